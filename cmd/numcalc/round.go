package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round <value> <digits>",
		Short: "Round value to the given number of fractional digits, half-away-from-zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				slog.Error("parse failed", "operand", args[0], "error", err)
				return err
			}
			digits, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid digits %q: %w", args[1], err)
			}
			result, err := v.round(int32(digits), true)
			if err != nil {
				slog.Error("round failed", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}

// newTruncLikeCmd builds trunc/floor/ceil, which share the same one-operand
// shape but round differently.
func newTruncLikeCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <value>",
		Short: name + " a value to a whole number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				slog.Error("parse failed", "operand", args[0], "error", err)
				return err
			}
			var result value
			switch name {
			case "trunc":
				result, err = v.round(0, false)
			case "floor":
				result, err = v.floor()
			case "ceil":
				result, err = v.ceil()
			}
			if err != nil {
				slog.Error(name+" failed", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
