package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/suvat/internal/analysis"
	"github.com/san-kum/suvat/internal/config"
	"github.com/san-kum/suvat/internal/export"
	"github.com/san-kum/suvat/internal/metrics"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/storage"
	"github.com/san-kum/suvat/internal/viz"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := a.store().List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs found")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED\tU\tA\tDURATION\tSAMPLES")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%ss\t%s\n",
					run.ID,
					run.Name,
					humanize.Time(run.Timestamp),
					a.format(run.StartSpeed),
					a.format(run.Acceleration),
					a.format(run.Duration),
					humanize.Comma(int64(run.Samples)),
				)
			}
			return w.Flush()
		},
	}
}

func (a *app) plotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot distance and speed of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, res, err := a.store().LoadResult(args[0])
			if err != nil {
				return err
			}
			if len(res.Samples) == 0 {
				return errors.New("no data to plot")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run: %s\n", meta.ID)
			fmt.Fprintf(out, "profile: %s\n", res.Profile)
			fmt.Fprintf(out, "samples: %d\n\n", len(res.Samples))

			for _, series := range []struct {
				caption string
				data    []float64
			}{
				{"distance (m) vs time", res.Distances()},
				{"speed (m/s) vs time", res.Speeds()},
			} {
				fmt.Fprintln(out, asciigraph.Plot(series.data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(series.caption),
				))
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func (a *app) phaseCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "plot a stored run in the (s, v) plane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := a.store().LoadResult(args[0])
			if err != nil {
				return err
			}

			portrait := analysis.GeneratePhasePortrait(res)
			if len(portrait.Points) == 0 {
				return errors.New("no data to plot")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "phase portrait: s across, v up")
			fmt.Fprint(out, portrait.ToASCII(width, height))

			for _, s := range analysis.TurningPoints(res) {
				fmt.Fprintf(out, "turns at t = %s s, s = %s m\n", a.format(s.T.Value()), a.format(s.S.Value()))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "plot width")
	cmd.Flags().IntVar(&height, "height", 20, "plot height")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, res, err := a.store().LoadResult(args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSON(cmd.OutOrStdout(), meta, res)
		},
	}
}

func (a *app) exportCSVCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the samples of a stored run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := a.store().LoadSamples(args[0])
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return errors.New("no data to export")
			}

			if outPath == "" {
				return storage.WriteCSV(cmd.OutOrStdout(), samples)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := storage.WriteCSV(f, samples); err != nil {
				return err
			}
			a.logger.Info("exported samples", "run", args[0], "path", outPath, "rows", len(samples))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func (a *app) exportSVGCmd() *cobra.Command {
	var (
		outPath string
		series  string
		stroke  string
	)

	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a stored run as an SVG line plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			which, err := export.ParseSeries(series)
			if err != nil {
				return err
			}
			_, res, err := a.store().LoadResult(args[0])
			if err != nil {
				return err
			}
			pts, err := export.Points(res, which)
			if err != nil {
				return err
			}

			opts := export.DefaultOptions()
			if stroke != "" {
				opts.Stroke = stroke
			}

			if outPath == "" {
				return export.WriteSVG(cmd.OutOrStdout(), pts, opts)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := export.WriteSVG(f, pts, opts); err != nil {
				return err
			}
			a.logger.Info("exported svg", "run", args[0], "series", which, "path", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&series, "series", "distance", "distance, speed or phase")
	cmd.Flags().StringVar(&stroke, "stroke", "", "line colour")
	return cmd
}

func (a *app) liveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [preset|run_id]",
		Short: "replay a trajectory in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && config.GetPreset(args[0]) == nil {
				_, res, err := a.store().LoadResult(args[0])
				if err != nil {
					return err
				}
				return viz.Run(res)
			}

			cfg, err := a.resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			sim := motion.New()
			for _, m := range metrics.Default() {
				sim.AddMetric(m)
			}
			res, err := sim.Run(cmd.Context(), cfg.Profile(), cfg.Sampling())
			if err != nil {
				return err
			}
			return viz.Run(res)
		},
	}
	addProfileFlags(cmd)
	return cmd
}
