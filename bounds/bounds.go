// Package bounds parses the voxelization-bounds CLI grammar:
// "(min_x, min_y, min_z) / (max_x, max_y, max_z)".
package bounds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridforge/voxelize/voxel"
)

const invalidFormatMessage = `invalid voxelization bounds: expected "(min_x, min_y, min_z) / (max_x, max_y, max_z)" format`

// Parse parses a voxelization-bounds string into an AABB. Parentheses around
// each component are optional; whitespace around commas, slashes, and
// numbers is permitted.
func Parse(s string) (voxel.AABB, error) {
	minStr, maxStr, ok := strings.Cut(s, "/")
	if !ok {
		return voxel.AABB{}, fmt.Errorf("%s", invalidFormatMessage)
	}

	min, err := parseXYZ(minStr)
	if err != nil {
		return voxel.AABB{}, fmt.Errorf("%s: %w", invalidFormatMessage, err)
	}

	max, err := parseXYZ(maxStr)
	if err != nil {
		return voxel.AABB{}, fmt.Errorf("%s: %w", invalidFormatMessage, err)
	}

	return voxel.NewAABB(min, max), nil
}

func parseXYZ(s string) ([3]float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	components := strings.Split(s, ",")
	if len(components) != 3 {
		return [3]float64{}, fmt.Errorf("expected 3 comma-separated components, got %d", len(components))
	}

	var xyz [3]float64
	for i, c := range components {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("failed to parse %q: %w", strings.TrimSpace(c), err)
		}
		xyz[i] = v
	}

	return xyz, nil
}
