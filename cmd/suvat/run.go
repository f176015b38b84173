package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/suvat/internal/analysis"
	"github.com/san-kum/suvat/internal/config"
	"github.com/san-kum/suvat/internal/integrators"
	"github.com/san-kum/suvat/internal/metrics"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/optim"
	"github.com/san-kum/suvat/internal/quantity"
)

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("u", "", "start speed (m/s)")
	cmd.Flags().String("a", "", "acceleration (m/s²)")
	cmd.Flags().String("time", "", "duration (s)")
	cmd.Flags().String("dt", "", "sampling step (s)")
	cmd.Flags().String("name", "", "run name")
	cmd.Flags().String("config", "", "trajectory config file (yaml)")
}

// resolveConfig builds the trajectory config. Precedence, lowest first:
// defaults, the preset named by args, --config, individual flags.
func (a *app) resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if u, ok, err := quantityFlag[quantity.SpeedDim](cmd, "u", a.policy); err != nil {
		return nil, err
	} else if ok {
		cfg.StartSpeed = u.Value()
	}
	if acc, ok, err := quantityFlag[quantity.AccelerationDim](cmd, "a", a.policy); err != nil {
		return nil, err
	} else if ok {
		cfg.Acceleration = acc.Value()
	}
	if d, ok, err := quantityFlag[quantity.TimeDim](cmd, "time", a.policy); err != nil {
		return nil, err
	} else if ok {
		cfg.Duration = d.Value()
	}
	if dt, ok, err := quantityFlag[quantity.TimeDim](cmd, "dt", a.policy); err != nil {
		return nil, err
	} else if ok {
		cfg.Dt = dt.Value()
	}
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		cfg.Name = name
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) runCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "sample a constant-acceleration trajectory and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			summary, err := analysis.Summarize(res)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !noSave {
				st := a.store()
				if err := st.Init(); err != nil {
					return err
				}
				runID, err := st.Save(res, &summary)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "run: %s\n", runID)
			}

			fmt.Fprintf(out, "profile: %s\n", res.Profile)
			fmt.Fprintf(out, "samples: %d\n\n", len(res.Samples))
			return a.printMetrics(out, res.Metrics, &summary)
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	return cmd
}

func (a *app) printMetrics(out io.Writer, m map[string]float64, s *analysis.Summary) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, a.format(m[name]))
	}
	if s != nil {
		fmt.Fprintf(w, "median_speed\t%s\n", a.format(s.MedianSpeed))
		fmt.Fprintf(w, "stddev_speed\t%s\n", a.format(s.StdDevSpeed))
		fmt.Fprintf(w, "max_distance\t%s\n", a.format(s.MaxDistance))
		fmt.Fprintf(w, "final_speed\t%s\n", a.format(s.FinalSpeed))
	}
	return w.Flush()
}

func (a *app) sweepCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "sweep [preset...]",
		Short: "run several presets concurrently with the same sampling",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = config.ListPresets()
			}

			sampling := motion.DefaultConfig()
			if d, ok, err := quantityFlag[quantity.TimeDim](cmd, "time", a.policy); err != nil {
				return err
			} else if ok {
				sampling.Duration = d
			}
			if dt, ok, err := quantityFlag[quantity.TimeDim](cmd, "dt", a.policy); err != nil {
				return err
			} else if ok {
				sampling.Dt = dt
			}

			profiles := make([]motion.Profile, 0, len(names))
			for _, name := range names {
				p := config.GetPreset(name)
				if p == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
				}
				profiles = append(profiles, p.Profile())
			}

			if err := sampling.Validate(); err != nil {
				return err
			}
			a.logger.Debug("sweeping presets", "count", len(profiles), "steps", sampling.Steps())
			results, err := motion.Sweep(cmd.Context(), profiles, sampling, metrics.Default)
			if err != nil {
				return err
			}

			if save {
				st := a.store()
				if err := st.Init(); err != nil {
					return err
				}
				for _, res := range results {
					summary, err := analysis.Summarize(res)
					if err != nil {
						return err
					}
					if _, err := st.Save(res, &summary); err != nil {
						return err
					}
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tU\tA\tFINAL_S\tFINAL_V\tPEAK\tPATH\tSTOP")
			for _, res := range results {
				final := res.Final()
				stop := "-"
				if t := res.Metrics["stop_time"]; !math.IsNaN(t) {
					stop = a.format(t)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					res.Profile.Name,
					a.format(res.Profile.Start.Value()),
					a.format(res.Profile.Accel.Value()),
					a.format(final.S.Value()),
					a.format(final.V.Value()),
					a.format(res.Metrics["peak_speed"]),
					a.format(res.Metrics["path_length"]),
					stop,
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("time", "", "duration (s)")
	cmd.Flags().String("dt", "", "sampling step (s)")
	cmd.Flags().BoolVar(&save, "save", false, "store every run")
	return cmd
}

func (a *app) approachCmd() *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "approach",
		Short: "step a speed toward a target at a limited rate, frame by frame",
		Example: `  suvat approach --from 0 --to 30 --rate 4.5 --dt 0.016`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _, err := quantityFlag[quantity.SpeedDim](cmd, "from", a.policy)
			if err != nil {
				return err
			}
			to, ok, err := quantityFlag[quantity.SpeedDim](cmd, "to", a.policy)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("--to is required")
			}
			rate, ok, err := quantityFlag[quantity.AccelerationDim](cmd, "rate", a.policy)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("--rate is required")
			}
			dt, ok, err := quantityFlag[quantity.TimeDim](cmd, "dt", a.policy)
			if err != nil {
				return err
			}
			if !ok {
				dt = quantity.NewTime(1.0 / 60)
			}

			step := motion.StepSize(rate, dt)
			series := motion.Approach(from, to, step, maxSteps)
			frames := len(series) - 1
			final := series[len(series)-1]

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "step: %s per frame\n", step.WithUnit())
			fmt.Fprintf(out, "frames: %d (%s s)\n", frames, a.format(dt.Scale(float64(frames)).Value()))
			fmt.Fprintf(out, "final: %s\n", final.WithUnit())
			if final != to {
				fmt.Fprintf(out, "target %s not reached within %d frames\n", to.WithUnit(), maxSteps)
			}

			if len(series) > 1 {
				data := make([]float64, len(series))
				for i, q := range series {
					data[i] = q.Value()
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(60),
					asciigraph.Caption("speed (m/s) per frame"),
				))
			}
			return nil
		},
	}
	cmd.Flags().String("from", "0", "start speed (m/s)")
	cmd.Flags().String("to", "", "target speed (m/s)")
	cmd.Flags().String("rate", "", "largest change per second (m/s²)")
	cmd.Flags().String("dt", "", "frame time (s), default 1/60")
	cmd.Flags().IntVar(&maxSteps, "max", 10000, "frame limit")
	return cmd
}

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list trajectory presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tU (m/s)\tA (m/s²)\tDT (s)\tDURATION (s)")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					name, a.format(p.StartSpeed), a.format(p.Acceleration), a.format(p.Dt), a.format(p.Duration))
			}
			return w.Flush()
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var with []string

	cmd := &cobra.Command{
		Use:   "compare [preset]",
		Short: "compare numerical integrators against the closed-form trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			if len(with) == 0 {
				with = integrators.Names()
			}

			p := cfg.Profile()
			sampling := cfg.Sampling()
			exact := p.At(sampling.Duration)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "exact\t\t\t%s\t%s\n", a.format(exact.S.Value()), a.format(exact.V.Value()))
			fmt.Fprintln(w, "INTEGRATOR\tMAX_ERR_S\tMAX_ERR_V\tFINAL_S\tFINAL_V")
			for _, name := range with {
				integ, err := integrators.Get(name)
				if err != nil {
					return err
				}
				dev, err := integrators.Compare(cmd.Context(), p, sampling, integ)
				if err != nil {
					return err
				}
				a.logger.Debug("compared integrator", "integrator", name, "max_err_s", dev.MaxDistance)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					dev.Integrator,
					a.format(dev.MaxDistance),
					a.format(dev.MaxSpeed),
					a.format(dev.Final.S.Value()),
					a.format(dev.Final.V.Value()),
				)
			}
			return w.Flush()
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().StringSliceVar(&with, "with", nil, "integrators to compare (default all)")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var (
		starts, accels string
		metric         string
		target         float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "grid-search start speed and acceleration for a metric target",
		Example: `  suvat search --u 27.8 --a -10:-1:0.5 --metric stop_time --target 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := optim.ParseRange(starts)
			if err != nil {
				return fmt.Errorf("--u: %w", err)
			}
			as, err := optim.ParseRange(accels)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}

			sampling := motion.DefaultConfig()
			if d, ok, err := quantityFlag[quantity.TimeDim](cmd, "time", a.policy); err != nil {
				return err
			} else if ok {
				sampling.Duration = d
			}
			if dt, ok, err := quantityFlag[quantity.TimeDim](cmd, "dt", a.policy); err != nil {
				return err
			} else if ok {
				sampling.Dt = dt
			}

			g := optim.NewGridSearch(us, as)
			a.logger.Debug("searching grid", "points", g.Size(), "metric", metric, "target", target)

			best, err := g.Search(cmd.Context(), sampling, metrics.Default, optim.MetricTarget(metric, target))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "searched: %d profiles\n", g.Size())
			fmt.Fprintf(out, "best: u=%s a=%s\n", best.Profile.Start.WithUnit(), best.Profile.Accel.WithUnit())
			fmt.Fprintf(out, "%s: %s (off by %s)\n\n", metric, a.format(best.Result.Metrics[metric]), a.format(best.Score))
			return a.printMetrics(out, best.Result.Metrics, nil)
		},
	}
	cmd.Flags().StringVar(&starts, "u", "0", "start speeds, x or lo:hi:step (m/s)")
	cmd.Flags().StringVar(&accels, "a", "", "accelerations, x or lo:hi:step (m/s²)")
	cmd.Flags().StringVar(&metric, "metric", "stop_time", "metric to match")
	cmd.Flags().Float64Var(&target, "target", 0, "metric target")
	cmd.Flags().String("time", "", "duration (s)")
	cmd.Flags().String("dt", "", "sampling step (s)")
	_ = cmd.MarkFlagRequired("a")
	return cmd
}
