package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Prismatic Beam Analysis Tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for static analysis of straight prismatic beams by the
direct stiffness (finite element) method.

Given a beam definition (span, section, supports and loads) the tool
computes:
  - Support reactions
  - Shear force and bending moment diagrams
  - Deflection curve
  - Signed extrema of each quantity and their positions`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Printf("  ║   %s ©  %s                              ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for static analysis of straight prismatic beams")
		fmt.Println("  by the direct stiffness (finite element) method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Point supports: fixed, pinned, roller")
		fmt.Println("    • Concentrated and uniformly distributed loads")
		fmt.Println("    • Shear, moment and deflection diagrams (terminal and PNG)")
		fmt.Println("    • Rectangular and arbitrary polygonal cross-sections")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
