package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic performance and adaptation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		id := learnerID(cmd)

		stats, err := svc.Stats(ctx, id)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No outcomes recorded yet.")
			return nil
		}

		topics := make([]string, 0, len(stats))
		for t := range stats {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		fmt.Printf("%-24s  %-6s  %-7s  %-7s\n", "Topic", "Rate", "Streak+", "Streak-")
		for _, topic := range topics {
			st := stats[topic]
			fmt.Printf("%-24s  %5.2f  %7d  %7d\n",
				topic, st.RollingSuccessRate, st.ConsecutiveSuccesses, st.ConsecutiveFailures)
		}

		decs, err := svc.Decisions(ctx, id)
		if err != nil {
			return err
		}
		if len(decs) > 0 {
			fmt.Println("\nAdaptations:")
			for _, d := range decs {
				clamped := ""
				if d.Clamped {
					clamped = " (clamped)"
				}
				fmt.Printf("  %s  %s -> %s%s\n", d.Topic, d.Trigger, d.Action, clamped)
			}
		}
		return nil
	},
}
