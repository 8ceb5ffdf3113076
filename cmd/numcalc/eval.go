package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Evaluate a binary expression: + - * / div mod pow",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := parseValue(args[0])
			if err != nil {
				slog.Error("parse failed", "operand", args[0], "error", err)
				return err
			}
			rhs, err := parseValue(args[2])
			if err != nil {
				slog.Error("parse failed", "operand", args[2], "error", err)
				return err
			}
			result, err := lhs.arith(args[1], rhs)
			if err != nil {
				slog.Error("arithmetic failed", "op", args[1], "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
