package voxel

import (
	"bytes"
	"io"
	"testing"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"binary-edge_u1", BinaryEdgeU1},
		{"binary-fill_u1", BinaryFillU1},
		{"linear-rgb8-color_u8", LinearRGB8U8},
		{"metallic-value_u8", MetallicU8},
		{"roughness-value_u8", RoughnessU8},
	}

	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if err != nil {
			t.Errorf("ParseChannel(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChannel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseChannel("nonsense"); err == nil {
		t.Error("ParseChannel(\"nonsense\") succeeded, want error")
	}
}

func TestExportEmptyGridIsAllZero(t *testing.T) {
	g := &FinalGrid{
		Shape:  Shape{Nx: 2, Ny: 2, Nz: 2},
		voxels: make([]Final, 8),
	}

	var buf bytes.Buffer
	if err := Export(&buf, g, BinaryEdgeU1); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := (8 + 7) / 8
	if buf.Len() != want {
		t.Fatalf("exported %d bytes, want %d", buf.Len(), want)
	}
	for _, b := range buf.Bytes() {
		if b != 0 {
			t.Errorf("expected all-zero bytes, got %x", buf.Bytes())
			break
		}
	}
}

func TestExportByteLengths(t *testing.T) {
	g := &FinalGrid{
		Shape:  Shape{Nx: 4, Ny: 4, Nz: 4},
		voxels: make([]Final, 64),
	}

	cases := []struct {
		channel Channel
		want    int
	}{
		{BinaryEdgeU1, 8},
		{BinaryFillU1, 8},
		{LinearRGB8U8, 192},
		{MetallicU8, 64},
		{RoughnessU8, 64},
	}

	for _, c := range cases {
		if got := ByteLength(g, c.channel); got != c.want {
			t.Errorf("ByteLength(%v) = %d, want %d", c.channel, got, c.want)
		}
	}
}

func TestBinaryEdgePacksMSBFirst(t *testing.T) {
	voxels := make([]Final, 9)
	voxels[0].Variant = Edge

	g := &FinalGrid{Shape: Shape{Nx: 9, Ny: 1, Nz: 1}, voxels: voxels}

	var buf bytes.Buffer
	if err := Export(&buf, g, BinaryEdgeU1); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if buf.Len() != 2 {
		t.Fatalf("exported %d bytes, want 2", buf.Len())
	}
	if buf.Bytes()[0] != 0x80 {
		t.Errorf("first byte = %08b, want 10000000", buf.Bytes()[0])
	}
	if buf.Bytes()[1] != 0x00 {
		t.Errorf("second byte = %08b, want 00000000 (LSB padding)", buf.Bytes()[1])
	}
}

func TestLinearRGB8CastsEdgeVoxels(t *testing.T) {
	voxels := []Final{
		{Variant: Edge, Color: [3]float64{1, 0.5, 0}},
		{Variant: Empty},
	}
	g := &FinalGrid{Shape: Shape{Nx: 2, Ny: 1, Nz: 1}, voxels: voxels}

	var buf bytes.Buffer
	if err := Export(&buf, g, LinearRGB8U8); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := []byte{255, 128, 0, 0, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestReaderReturnsEOFAtEnd(t *testing.T) {
	g := &FinalGrid{Shape: Shape{Nx: 1, Ny: 1, Nz: 1}, voxels: make([]Final, 1)}
	r := NewReader(g, MetallicU8)

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if n != 1 || err != nil {
		t.Fatalf("first read: n=%d err=%v, want n=1 err=nil", n, err)
	}

	n, err = r.Read(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("second read: n=%d err=%v, want n=0 err=io.EOF", n, err)
	}
}
