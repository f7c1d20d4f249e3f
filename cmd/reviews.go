package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List topics due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOfArg, _ := cmd.Flags().GetString("as-of")
		asOf := time.Now()
		if asOfArg != "" {
			var err error
			asOf, err = time.Parse("2006-01-02", asOfArg)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q: %w", asOfArg, err)
			}
		}

		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		due, err := svc.DueReviews(context.Background(), learnerID(cmd), asOf)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("No reviews due.")
			return nil
		}
		for _, topic := range due {
			fmt.Println(topic)
		}
		return nil
	},
}

var reviewsDoneCmd = &cobra.Command{
	Use:   "done <topic>",
	Short: "Record the result of a topic review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed, _ := cmd.Flags().GetBool("failed")

		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entry, err := svc.ReviewOutcome(context.Background(), learnerID(cmd), args[0], !failed)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("topic %q has no review schedule", args[0])
		}
		fmt.Printf("%s: next review %s (interval %dd)\n",
			entry.Topic, entry.NextReview.Format("2006-01-02"), entry.IntervalDays())
		return nil
	},
}

func init() {
	reviewsCmd.Flags().String("as-of", "", "Date to evaluate against (YYYY-MM-DD, default today)")
	reviewsDoneCmd.Flags().Bool("failed", false, "The review was failed")
	reviewsCmd.AddCommand(reviewsDoneCmd)
}
