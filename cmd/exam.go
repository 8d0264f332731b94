package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/exams"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Record exam results",
}

var examAddCmd = &cobra.Command{
	Use:   "add <code> <name> <score> <max-score>",
	Short: "Record an exam result",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[2])
		if err != nil || score < 0 {
			return fmt.Errorf("invalid score %q", args[2])
		}
		maxScore, err := strconv.Atoi(args[3])
		if err != nil || maxScore < 1 {
			return fmt.Errorf("invalid max score %q", args[3])
		}
		date := time.Now()
		if d, _ := cmd.Flags().GetString("date"); d != "" {
			date, err = time.Parse("2006-01-02", d)
			if err != nil {
				return fmt.Errorf("invalid date %q: want YYYY-MM-DD", d)
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		student, err := st.Students().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		r, err := st.Exams().Create(cmd.Context(), exams.Result{
			StudentID: student.ID,
			Name:      args[1],
			Score:     score,
			MaxScore:  maxScore,
			Date:      date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s for %s: %d/%d (%s)\n", r.Name, student.Name, r.Score, r.MaxScore, r.Band())
		return nil
	},
}

var examListCmd = &cobra.Command{
	Use:   "list <code>",
	Short: "List a student's exam results, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		student, err := st.Students().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		results, err := st.Exams().ForStudent(cmd.Context(), student.ID)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No exams recorded for %s.\n", student.Name)
			return nil
		}

		fmt.Printf("%-36s  %-10s  %-24s  %9s  %s\n", "ID", "Date", "Name", "Score", "Band")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range results {
			fmt.Printf("%-36s  %-10s  %-24s  %4d/%-4d  %s\n",
				r.ID, r.Date.Format("2006-01-02"), r.Name, r.Score, r.MaxScore, r.Band())
		}
		return nil
	},
}

var examRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an exam result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Exams().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed exam", args[0])
		return nil
	},
}

func init() {
	examAddCmd.Flags().String("date", "", "Exam date as YYYY-MM-DD (default today)")
	examCmd.AddCommand(examAddCmd, examListCmd, examRmCmd)
}
