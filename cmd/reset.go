package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner's curriculum",
	Long:  "Removes the learner's curriculum document. The outcome and decision logs are kept for audit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		id := learnerID(cmd)
		if err := s.CurriculumRepo().Delete(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("curriculum for %s deleted\n", id)
		return nil
	},
}
