package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise/pathwise/internal/curriculum"
)

var recordCmd = &cobra.Command{
	Use:   "record <topic> <task-id>",
	Short: "Record a task outcome and adapt the curriculum",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		passed, _ := cmd.Flags().GetBool("passed")
		score, _ := cmd.Flags().GetFloat64("score")
		minutes, _ := cmd.Flags().GetInt("minutes")

		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := svc.RecordOutcome(context.Background(), learnerID(cmd), curriculum.PerformanceRecord{
			Topic:            args[0],
			TaskID:           args[1],
			Passed:           passed,
			Score:            score,
			TimeSpentMinutes: minutes,
		})
		if err != nil {
			return err
		}

		outcome := "fail"
		if passed {
			outcome = "pass"
		}
		fmt.Printf("recorded %s on %s\n", outcome, args[0])
		if st := res.Stats; st != nil {
			fmt.Printf("  topic rate %.2f over %d outcomes\n", st.RollingSuccessRate, st.WindowCount)
		}
		if res.Decision != nil {
			clamped := ""
			if res.Decision.Clamped {
				clamped = " (clamped)"
			}
			fmt.Printf("  adapted: %s -> %s%s\n", res.Decision.Trigger, res.Decision.Action, clamped)
		}
		if res.ModuleCompleted {
			fmt.Println("  module completed; review scheduled")
		}
		if res.MiniProject {
			fmt.Println("  mini-project added to the next module")
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("passed", false, "The task was passed")
	recordCmd.Flags().Float64("score", 0, "Numeric score for the attempt")
	recordCmd.Flags().Int("minutes", 0, "Time spent in minutes")
}
