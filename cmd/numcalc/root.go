package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// useBig is the --big persistent flag: when set, every subcommand operates
// on BIGNUMERIC (scale 38) instead of NUMERIC (scale 9).
var useBig bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "numcalc",
		Short:        "Evaluate and aggregate NUMERIC/BIGNUMERIC decimal expressions",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&useBig, "big", false, "operate on BIGNUMERIC (scale 38) instead of NUMERIC (scale 9)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	root.AddCommand(newEvalCmd())
	root.AddCommand(newTruncLikeCmd("trunc"))
	root.AddCommand(newTruncLikeCmd("floor"))
	root.AddCommand(newTruncLikeCmd("ceil"))
	root.AddCommand(newRoundCmd())
	root.AddCommand(newSumCmd())
	root.AddCommand(newAvgCmd())
	return root
}
