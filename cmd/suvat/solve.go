package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/suvat/internal/analysis"
	"github.com/san-kum/suvat/internal/kinematics"
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [s|u|v|a|t]",
		Short: "solve one SUVAT variable from the ones given",
		Example: `  suvat solve v --u 0 --a 9.81 --t 2
  suvat solve time --s 100 --u 0 --a 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := kinematics.ParseVariable(args[0])
			if err != nil {
				return err
			}
			k, err := a.knowns(cmd)
			if err != nil {
				return err
			}

			sol, err := kinematics.Solve(k, want)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s = %s %s\n", sol.Variable, a.format(sol.Value), sol.Variable.Unit())
			fmt.Fprintf(out, "  via %s\n", sol.Equation.Formula)
			if sol.Degenerate() {
				fmt.Fprintln(out, "  no finite value for these inputs")
			}
			return nil
		},
	}
	addKnownFlags(cmd)
	return cmd
}

func (a *app) deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "derive all five SUVAT variables from any three",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.knowns(cmd)
			if err != nil {
				return err
			}

			all, solved, err := kinematics.Complete(k)
			if err != nil {
				return err
			}

			source := make(map[kinematics.Variable]string, len(solved))
			for _, sol := range solved {
				source[sol.Variable] = sol.Equation.Formula
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VAR\tVALUE\tUNIT\tSOURCE")
			for _, v := range kinematics.Variables() {
				src, ok := source[v]
				if !ok {
					src = "given"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v, a.format(all[v]), v.Unit(), src)
			}
			return w.Flush()
		},
	}
	addKnownFlags(cmd)
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "check that all five SUVAT values agree with every equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.knowns(cmd)
			if err != nil {
				return err
			}

			res, err := kinematics.Check(k)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "EQUATION\tGIVEN\tDERIVED\tERROR")
			for _, r := range res {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					r.Equation.Formula, a.format(r.Given), a.format(r.Derived), a.format(r.Error()))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if kinematics.Consistent(res, tol) {
				fmt.Fprintf(cmd.OutOrStdout(), "\nconsistent within %g\n", tol)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "\ninconsistent: worst is %s\n", res[0].Equation.Formula)
			}
			return nil
		},
	}
	addKnownFlags(cmd)
	cmd.Flags().Float64Var(&tol, "tol", 1e-9, "largest acceptable |derived − given|")
	return cmd
}

func (a *app) crossCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross",
		Short: "when a body starting at u under a reaches displacement s",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok, err := quantityFlag[quantity.DistanceDim](cmd, "s", a.policy)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("--s is required")
			}
			u, _, err := quantityFlag[quantity.SpeedDim](cmd, "u", a.policy)
			if err != nil {
				return err
			}
			acc, _, err := quantityFlag[quantity.AccelerationDim](cmd, "a", a.policy)
			if err != nil {
				return err
			}

			p := motion.Profile{Start: u, Accel: acc}
			out := cmd.OutOrStdout()

			if t, ok := analysis.Crossing(p, s); ok {
				fmt.Fprintf(out, "reaches %s at t = %s %s\n", s.WithUnit(), a.format(t.Value()), t.Unit())
			} else {
				fmt.Fprintf(out, "never reaches %s\n", s.WithUnit())
			}
			if t, ok := analysis.StopTime(p); ok {
				apex, _ := analysis.Apex(p)
				fmt.Fprintf(out, "turns around at t = %s %s, s = %s %s\n",
					a.format(t.Value()), t.Unit(), a.format(apex.Value()), apex.Unit())
			}
			return nil
		},
	}
	cmd.Flags().String("s", "", "target displacement (m)")
	cmd.Flags().String("u", "0", "start speed (m/s)")
	cmd.Flags().String("a", "0", "acceleration (m/s²)")
	return cmd
}
