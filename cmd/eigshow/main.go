package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/eigshow/internal/engine"
	"github.com/san-kum/eigshow/internal/export"
	"github.com/san-kum/eigshow/internal/gui"
	"github.com/san-kum/eigshow/internal/matrices"
	"github.com/san-kum/eigshow/internal/sweep"
	"github.com/san-kum/eigshow/internal/tui"
)

var (
	catalogFile string
	seed        uint64

	sweepMatrix string
	sweepSteps  int
	sweepCSV    string
	sweepSVG    string
)

func loadCatalog() (*matrices.Catalog, error) {
	if catalogFile == "" {
		return matrices.Builtin(), nil
	}
	return matrices.Load(catalogFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "eigshow",
		Short: "interactive eigenvector and singular vector demonstrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			gui.Run(catalog, seed)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "matrix catalog file (yaml)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "random matrix seed")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal demonstrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			return tui.Run(catalog, seed)
		},
	}

	matricesCmd := &cobra.Command{
		Use:   "matrices",
		Short: "list selectable matrices",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			for _, p := range catalog.Presets {
				fmt.Printf("  %-16s %s\n", p.Name, p.Mat())
			}
			fmt.Printf("  %-16s entries ~ N(0, %.2f^2), fresh every selection\n",
				matrices.Random, matrices.Sigma)
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep x around the circle and plot Ax alignment",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepMatrix, "matrix", "", "matrix name (default: catalog default)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 360, "sweep steps")
	sweepCmd.Flags().StringVar(&sweepCSV, "csv", "", "write the series to a CSV file")
	sweepCmd.Flags().StringVar(&sweepSVG, "svg", "", "write the swept traces to an SVG file")

	rootCmd.AddCommand(tuiCmd, matricesCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	session := engine.NewSession(catalog, seed)
	if sweepMatrix != "" {
		session.Handle(engine.MatrixSelected{Choice: sweepMatrix})
	}

	series := sweep.Run(session, sweepSteps)

	fmt.Printf("A = %s  (%s)\n\n", session.Matrix(), session.ChoiceName())
	fmt.Println(asciigraph.Plot(series.Alignment,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("|sin angle(x, Ax)| over one revolution (0 = eigenvector direction)")))

	if minima := series.Minima(); len(minima) > 0 {
		fmt.Println("\nalignment minima:")
		for _, i := range minima {
			fmt.Printf("  theta=%6.1f°  alignment=%.4f  |Ax|=%.4f\n",
				series.Theta[i]*180/math.Pi, series.Alignment[i], series.Magnitude[i])
		}
	}

	if sweepCSV != "" {
		if err := writeCSV(sweepCSV, series); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", sweepCSV)
	}
	if sweepSVG != "" {
		if err := os.WriteFile(sweepSVG, []byte(export.SessionSVG(session, 800, 800)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", sweepSVG)
	}
	return nil
}

func writeCSV(path string, series *sweep.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"theta", "alignment", "magnitude"}); err != nil {
		return err
	}
	for i := range series.Theta {
		row := []string{
			strconv.FormatFloat(series.Theta[i], 'f', 6, 64),
			strconv.FormatFloat(series.Alignment[i], 'f', 6, 64),
			strconv.FormatFloat(series.Magnitude[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
