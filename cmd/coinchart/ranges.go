package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"CoinChart/internal/model"
)

func newRangesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "List the time ranges with their day and sample counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()
			out := cmd.OutOrStdout()
			ctrl := a.view.Controller()
			fmt.Fprintf(out, "%-6s %6s %8s\n", "RANGE", "DAYS", "SAMPLES")
			for _, r := range model.Ranges {
				days := ctrl.Days(r)
				marker := ""
				if r == ctrl.Range() {
					marker = " *"
				}
				fmt.Fprintf(out, "%-6s %6d %8d%s\n", r, days, a.gen.Len(days), marker)
			}
			return nil
		},
	}
}
