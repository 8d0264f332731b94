package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record and list lesson progress",
}

var progressSetCmd = &cobra.Command{
	Use:   "set <code> <level> <lesson> <status>",
	Short: "Set a student's status for a lesson (locked, in_progress, completed)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, ok := progress.ParseStatus(args[3])
		if !ok {
			names := make([]string, 0, 3)
			for _, s := range progress.AllStatuses() {
				names = append(names, string(s))
			}
			return fmt.Errorf("unknown status %q: want one of %s", args[3], strings.Join(names, ", "))
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
		lesson, err := findLesson(cmd.Context(), st, args[1], args[2])
		if err != nil {
			return err
		}
		if _, err := st.Progress().Set(cmd.Context(), student.ID, lesson.ID, status); err != nil {
			return err
		}
		fmt.Printf("%s: %s is now %s\n", student.Name, lesson.Name, status.DisplayName())
		return nil
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list <code>",
	Short: "List a student's progress rows in the order they were recorded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := st.Snapshots().ByCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cat := curriculum.NewCatalog(snap.Levels, snap.Lessons)
		records, _ := progress.Join(cat, snap.Rows, progress.MembershipStored)
		if len(records) == 0 {
			fmt.Printf("No progress recorded for %s.\n", snap.Student.Name)
			return nil
		}

		fmt.Printf("%-7s  %-6s  %-30s  %s\n", "Level", "Lesson", "Name", "Status")
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range records {
			fmt.Printf("%-7s  %-6d  %-30s  %s\n", levelLabel(r), r.LessonNumber, r.LessonName, r.Status.DisplayName())
		}
		return nil
	},
}

func levelLabel(r progress.Record) string {
	if r.LevelNumber < 1 {
		return "?"
	}
	return fmt.Sprintf("%d", r.LevelNumber)
}

func init() {
	progressCmd.AddCommand(progressSetCmd, progressListCmd)
}

