package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Interactively visualize a voxelized scene (not implemented)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("visualize: interactive visualization is not implemented")
	},
}
