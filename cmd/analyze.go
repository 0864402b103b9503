package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/fea"
	"github.com/alexiusacademia/gobeam/internal/model"
)

var (
	analyzeModelFile string
	analyzeSamples   int
	analyzePlots     bool
	analyzeExportDir string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a beam defined in a model file",
	Long: `Run a static analysis of the beam described by a YAML model file
and report support reactions, diagram extrema and the shear, moment
and deflection diagrams.

Sign conventions: loads are downward positive, reactions upward
positive, sagging moment positive and downward deflection negative.

Examples:
  # Analyze a beam and show terminal diagrams
  gobeam analyze --model beam.yaml

  # Higher diagram resolution, PNG export
  gobeam analyze --model beam.yaml --samples 50 --export diagrams/`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeModelFile, "model", "m", "", "Beam model file (YAML) [required]")
	analyzeCmd.Flags().IntVarP(&analyzeSamples, "samples", "n", fea.DefaultSampleCount, "Diagram samples per element")
	analyzeCmd.Flags().BoolVar(&analyzePlots, "plots", true, "Show ASCII diagrams")
	analyzeCmd.Flags().StringVar(&analyzeExportDir, "export", "", "Directory for PNG diagram export")

	analyzeCmd.MarkFlagRequired("model")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	m, err := model.Load(analyzeModelFile)
	if err != nil {
		return err
	}
	beam, err := m.Beam()
	if err != nil {
		return err
	}

	res, err := fea.Solve(beam, analyzeSamples)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM ANALYSIS - DIRECT STIFFNESS METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span:\t%.0f mm\n", beam.Span)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.0f MPa\n", beam.E)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.4e mm⁴\n", beam.I)
	fmt.Fprintf(w, "  Flexural Rigidity (EI):\t%.4e N-mm²\n", beam.EI())
	fmt.Fprintf(w, "  Supports:\t%d\n", len(beam.Supports))
	fmt.Fprintf(w, "  Point Loads:\t%d\n", len(beam.PointLoads))
	fmt.Fprintf(w, "  Distributed Loads:\t%d\n", len(beam.DistributedLoads))
	fmt.Fprintf(w, "  Analysis Nodes:\t%d\n", len(res.NodePositions))
	w.Flush()
	fmt.Println()

	printReactions(beam, res)
	printExtrema(res)

	if analyzePlots {
		fmt.Println(diagram.ShearPlot(res.Samples))
		fmt.Println()
		fmt.Println(diagram.MomentPlot(res.Samples))
		fmt.Println()
		fmt.Println(diagram.DeflectionPlot(res.Samples))
		fmt.Println()
	}

	fmt.Print(diagram.DrawSummaryBox("GOVERNING VALUES", []string{
		fmt.Sprintf("Max shear      : %10.3f kN   at x = %.0f mm", maxAbs(res.Shear), maxAbsX(res.Shear)),
		fmt.Sprintf("Max moment     : %10.3f kN-m at x = %.0f mm", maxAbs(res.Moment), maxAbsX(res.Moment)),
		fmt.Sprintf("Max deflection : %10.4f mm   at x = %.0f mm", maxAbs(res.Deflection), maxAbsX(res.Deflection)),
	}))
	fmt.Println()

	if analyzeExportDir != "" {
		if err := diagram.ExportAll(res, analyzeExportDir); err != nil {
			return err
		}
		fmt.Printf("  Diagrams exported to %s\n\n", analyzeExportDir)
	}
	return nil
}

func printReactions(beam *fea.Beam, res *fea.Result) {
	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Position\tType\tForce (kN)\tMoment (kN-m)\n")

	supports := append([]fea.Support(nil), beam.Supports...)
	sort.Slice(supports, func(i, j int) bool { return supports[i].Position < supports[j].Position })

	for _, s := range supports {
		if s.Type == fea.Free {
			continue
		}
		node := sort.SearchFloat64s(res.NodePositions, s.Position)
		force := res.Reactions[2*node] / 1000
		switch s.Type {
		case fea.Fixed:
			moment := res.Reactions[2*node+1] / 1e6
			fmt.Fprintf(w, "  %.0f mm\t%s\t%.3f\t%.3f\n", s.Position, s.Type, force, moment)
		default:
			fmt.Fprintf(w, "  %.0f mm\t%s\t%.3f\t-\n", s.Position, s.Type, force)
		}
	}
	w.Flush()
	fmt.Println()
}

func printExtrema(res *fea.Result) {
	fmt.Println("DIAGRAM EXTREMA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Quantity\tMin\tat x (mm)\tMax\tat x (mm)\n")
	fmt.Fprintf(w, "  Shear (kN)\t%.3f\t%.0f\t%.3f\t%.0f\n",
		res.Shear.Min, res.Shear.MinX, res.Shear.Max, res.Shear.MaxX)
	fmt.Fprintf(w, "  Moment (kN-m)\t%.3f\t%.0f\t%.3f\t%.0f\n",
		res.Moment.Min, res.Moment.MinX, res.Moment.Max, res.Moment.MaxX)
	fmt.Fprintf(w, "  Deflection (mm)\t%.4f\t%.0f\t%.4f\t%.0f\n",
		res.Deflection.Min, res.Deflection.MinX, res.Deflection.Max, res.Deflection.MaxX)
	w.Flush()
	fmt.Println()
}

func maxAbs(e fea.Extrema) float64 {
	if -e.Min > e.Max {
		return -e.Min
	}
	return e.Max
}

func maxAbsX(e fea.Extrema) float64 {
	if -e.Min > e.Max {
		return e.MinX
	}
	return e.MaxX
}
