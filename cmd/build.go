package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwise/pathwise/internal/curriculum"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Plan a new curriculum for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, _ := cmd.Flags().GetStringSlice("goal")
		skill, _ := cmd.Flags().GetString("skill")
		style, _ := cmd.Flags().GetString("style")
		hours, _ := cmd.Flags().GetFloat64("hours")
		session, _ := cmd.Flags().GetInt("session")
		weeks, _ := cmd.Flags().GetInt("weeks")

		svc, s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		lc := &curriculum.LearnerContext{
			LearnerID:  learnerID(cmd),
			SkillLevel: curriculum.SkillLevel(skill),
			Goals:      goals,
			TimeBudget: curriculum.TimeBudget{HoursPerWeek: hours, SessionMinutes: session},
			Style:      curriculum.LearningStyle(style),
			WeeksAhead: weeks,
		}

		c, err := svc.Build(context.Background(), lc)
		if err != nil {
			return err
		}

		printCurriculum(c)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringSlice("goal", nil, "Goal topic (repeatable)")
	buildCmd.Flags().String("skill", "beginner", "Skill level: beginner|intermediate|advanced|expert")
	buildCmd.Flags().String("style", "mixed", "Learning style: hands-on|theory|mixed")
	buildCmd.Flags().Float64("hours", 5, "Hours per week")
	buildCmd.Flags().Int("session", 30, "Preferred session length in minutes")
	buildCmd.Flags().Int("weeks", 0, "Planning horizon in weeks (0 = default)")
	buildCmd.MarkFlagRequired("goal")
}

func printCurriculum(c *curriculum.Curriculum) {
	fmt.Printf("Curriculum %s  (v%d, %s)\n", c.ID, c.Version, c.Status)
	if c.UsedFallback {
		fmt.Println("  note: built partly or fully from templates (content source unavailable)")
	}
	if c.OverBudget {
		fmt.Println("  note: exceeds the weekly time budget even after trimming")
	}
	fmt.Printf("  total: %.1fh across %d modules, %d tasks/week target\n",
		c.TotalHours(), len(c.Modules), c.WeeklyTaskTarget)
	fmt.Println()

	for i, m := range c.Modules {
		marker := " "
		if i == c.CurrentModuleIndex {
			marker = ">"
		}
		opt := ""
		if m.Optional {
			opt = " (optional)"
		}
		fmt.Printf("%s %2d. %-30s d%-2d %.1fh%s\n", marker, i+1, m.Title, m.Difficulty, m.EstimatedHours, opt)
		if len(m.Prerequisites) > 0 {
			fmt.Printf("      after: %s\n", strings.Join(m.Prerequisites, ", "))
		}
		for _, t := range m.Tasks {
			status := " "
			switch t.Status {
			case curriculum.TaskCompleted:
				status = "x"
			case curriculum.TaskSkipped:
				status = "-"
			case curriculum.TaskInProgress:
				status = "~"
			}
			tag := ""
			if t.IsReview {
				tag = " [review]"
			}
			if t.IsMiniProject {
				tag = " [mini-project]"
			}
			fmt.Printf("      [%s] %-5s %s%s\n", status, t.Type, t.Title, tag)
		}
	}
}
