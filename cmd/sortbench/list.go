package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pivotsort/hwy"
	"github.com/ajroetker/go-pivotsort/internal/gen"
	"github.com/ajroetker/go-pivotsort/sort"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List strategies, distributions and the detected SIMD target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "strategies:    %s\n", strings.Join(sort.StrategyNames(), ", "))
			fmt.Fprintf(out, "distributions: %s\n", strings.Join(gen.DistributionNames(), ", "))
			fmt.Fprintf(out, "types:         %s\n", strings.Join(elemTypes, ", "))
			fmt.Fprintf(out, "simd:          %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			return nil
		},
	}
}
