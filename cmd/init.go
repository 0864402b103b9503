package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterModel = `# gobeam model file
# Units: positions in mm, point loads in kN, distributed loads in kN/m.
# Loads are downward positive.

span: 6000

# Either a material name (steel, aluminum, timber, concrete-c21/28/35)
# or an explicit elastic modulus in MPa, e.g. "e: 200000".
material: steel

section:
  width: 100    # mm
  depth: 300    # mm
  # For a non-rectangular (but still prismatic) section, give the
  # outline instead of width/depth:
  # vertices:
  #   - {x: 0, y: 0}
  #   - {x: 100, y: 0}
  #   - {x: 100, y: 300}
  #   - {x: 0, y: 300}

supports:
  - {position: 0, type: pinned}
  - {position: 6000, type: roller}
  # Types: fixed, pinned, roller, free.
  # A "free" support constrains nothing; it only adds an analysis node.

pointLoads:
  - {position: 3000, magnitude: 10}   # kN

distributedLoads:
  - {start: 0, end: 6000, intensity: 5}   # kN/m
`

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a commented starter model file",
	Long: `Write a starter beam model (simply supported beam with a midspan
point load and a full-span distributed load) to the given file, or
beam.yaml by default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "beam.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.WriteFile(path, []byte(starterModel), 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
