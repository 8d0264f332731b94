package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/progress"
	"github.com/abhisek/levelup/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the curriculum and progress rows for inconsistencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, drift, err := checkDrift(cmd.Context(), st)
		if err != nil {
			return err
		}

		problems := 0
		if err := curriculum.Validate(cat.Levels(), cat.Lessons()); err != nil {
			fmt.Println(err)
			fmt.Println()
			problems++
		}

		if len(drift) > 0 {
			fmt.Printf("%d progress row(s) count towards a level other than their lesson's:\n", len(drift))
			for _, d := range drift {
				lesson, _ := cat.Lesson(d.LessonID)
				fmt.Printf("  row %s  lesson %q  stored level %s  lesson level %s\n",
					d.RowID, lesson.Name, levelName(cat, d.StoredLevelID), levelName(cat, d.LessonLevelID))
			}
			fmt.Println("\nRun `levelup repair` to move them to their lesson's level.")
			problems += len(drift)
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Println("No problems found.")
		return nil
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Move drifted progress rows to their lesson's current level",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, drift, err := checkDrift(cmd.Context(), st)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(drift))
		for _, d := range drift {
			ids = append(ids, d.RowID)
		}

		n, err := st.Progress().Realign(cmd.Context(), ids)
		if err != nil {
			return fmt.Errorf("repair progress: %w", err)
		}
		fmt.Printf("Repaired %d progress row(s)\n", n)
		return nil
	},
}

// checkDrift loads the curriculum and every progress row and returns rows
// whose stored level differs from their lesson's level.
func checkDrift(ctx context.Context, st *store.Store) (*curriculum.Catalog, []progress.Drift, error) {
	cat, err := loadCatalog(ctx, st)
	if err != nil {
		return nil, nil, err
	}
	rows, err := st.Progress().All(ctx)
	if err != nil {
		return nil, nil, err
	}
	_, drift := progress.Join(cat, rows, progress.MembershipStored)
	return cat, drift, nil
}

func levelName(cat *curriculum.Catalog, id string) string {
	lvl, ok := cat.Level(id)
	if !ok {
		return "(missing)"
	}
	return fmt.Sprintf("%d", lvl.Number)
}
