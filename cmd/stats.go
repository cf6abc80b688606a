package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashwinkumar/biotutor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics across all runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		topicCount, err := repo.TopicCount(ctx)
		if err != nil {
			return fmt.Errorf("count topics: %w", err)
		}

		totals, err := repo.QuizTotals(ctx)
		if err != nil {
			return fmt.Errorf("sum quizzes: %w", err)
		}

		fmt.Println("Study Statistics")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Topics studied:   %d\n", topicCount)
		fmt.Printf("Quizzes taken:    %d\n", totals.Quizzes)
		if totals.Total > 0 {
			fmt.Printf("Questions graded: %d\n", totals.Total)
			fmt.Printf("Overall average:  %.0f%%\n", 100*float64(totals.Score)/float64(totals.Total))
		} else {
			fmt.Println("Overall average:  unavailable (no quizzes yet)")
		}

		quizzes, err := repo.QueryQuizEvents(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query quiz events: %w", err)
		}
		if len(quizzes) > 0 {
			fmt.Println()
			fmt.Println("Recent Quizzes")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-19s  %-20s  %-6s  %-10s  %s\n", "Timestamp", "Topic", "Kind", "Difficulty", "Score")
			for _, q := range quizzes {
				topic := q.Topic
				if len(topic) > 20 {
					topic = topic[:20]
				}
				fmt.Printf("%-19s  %-20s  %-6s  %-10s  %d/%d (%.0f%%)\n",
					q.Timestamp.Local().Format("2006-01-02 15:04:05"),
					topic, q.Kind, q.Difficulty, q.Score, q.Total, q.Percent)
			}
		}

		return nil
	},
}
