package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sqlnumeric/decimal"
)

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <values...>",
		Short: "Sum one or more values using a SumAggregator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useBig {
				var agg decimal.BigNumericSumAggregator
				for _, a := range args {
					v, err := decimal.ParseBigNumeric(a)
					if err != nil {
						slog.Error("parse failed", "operand", a, "error", err)
						return err
					}
					agg.Add(v)
				}
				result, err := agg.GetSum()
				if err != nil {
					slog.Error("sum failed", "error", err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
				return nil
			}
			var agg decimal.NumericSumAggregator
			for _, a := range args {
				v, err := decimal.ParseNumeric(a)
				if err != nil {
					slog.Error("parse failed", "operand", a, "error", err)
					return err
				}
				agg.Add(v)
			}
			result, err := agg.GetSum()
			if err != nil {
				slog.Error("sum failed", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}

func newAvgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avg <values...>",
		Short: "Average one or more values using a SumAggregator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useBig {
				var agg decimal.BigNumericSumAggregator
				for _, a := range args {
					v, err := decimal.ParseBigNumeric(a)
					if err != nil {
						slog.Error("parse failed", "operand", a, "error", err)
						return err
					}
					agg.Add(v)
				}
				result, err := agg.GetAverage(uint64(len(args)))
				if err != nil {
					slog.Error("average failed", "error", err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
				return nil
			}
			var agg decimal.NumericSumAggregator
			for _, a := range args {
				v, err := decimal.ParseNumeric(a)
				if err != nil {
					slog.Error("parse failed", "operand", a, "error", err)
					return err
				}
				agg.Add(v)
			}
			result, err := agg.GetAverage(uint64(len(args)))
			if err != nil {
				slog.Error("average failed", "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
