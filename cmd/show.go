package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learner's current curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		c, err := svc.Curriculum(context.Background(), learnerID(cmd))
		if err != nil {
			return err
		}

		printCurriculum(c)
		fmt.Printf("\nprogress: %.0f%%\n", c.OverallProgress*100)
		return nil
	},
}
