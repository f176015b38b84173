package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/suvat/internal/kinematics"
	"github.com/san-kum/suvat/internal/quantity"
)

var variableUsage = map[kinematics.Variable]string{
	kinematics.S: "displacement",
	kinematics.U: "start speed",
	kinematics.V: "end speed",
	kinematics.A: "acceleration",
	kinematics.T: "elapsed time",
}

// addKnownFlags registers --s --u --v --a --t as text flags.
func addKnownFlags(cmd *cobra.Command) {
	for _, v := range kinematics.Variables() {
		cmd.Flags().String(v.String(), "", fmt.Sprintf("%s (%s)", variableUsage[v], v.Unit()))
	}
}

// knowns collects the SUVAT flags that were set on the command line.
func (a *app) knowns(cmd *cobra.Command) (kinematics.Knowns, error) {
	k := kinematics.Knowns{}
	for _, v := range kinematics.Variables() {
		if !cmd.Flags().Changed(v.String()) {
			continue
		}
		text, err := cmd.Flags().GetString(v.String())
		if err != nil {
			return nil, err
		}
		x, err := a.parseVariable(v, text)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", v, err)
		}
		k[v] = x
	}
	return k, nil
}

func (a *app) parseVariable(v kinematics.Variable, text string) (float64, error) {
	switch v {
	case kinematics.S:
		return parseValue[quantity.DistanceDim](text, a.policy)
	case kinematics.U, kinematics.V:
		return parseValue[quantity.SpeedDim](text, a.policy)
	case kinematics.A:
		return parseValue[quantity.AccelerationDim](text, a.policy)
	case kinematics.T:
		return parseValue[quantity.TimeDim](text, a.policy)
	}
	return 0, kinematics.ErrUnknownVariable
}

func parseValue[D quantity.Dimension](text string, p quantity.Policy) (float64, error) {
	q, err := quantity.Parse[D](text, p)
	return q.Value(), err
}

// quantityFlag reads a text flag as a quantity. ok is false when the flag
// was left at its default.
func quantityFlag[D quantity.Dimension](cmd *cobra.Command, name string, p quantity.Policy) (q quantity.Quantity[D], ok bool, err error) {
	if !cmd.Flags().Changed(name) {
		return q, false, nil
	}
	text, err := cmd.Flags().GetString(name)
	if err != nil {
		return q, false, err
	}
	q, err = quantity.Parse[D](text, p)
	if err != nil {
		return q, false, fmt.Errorf("--%s: %w", name, err)
	}
	return q, true, nil
}
