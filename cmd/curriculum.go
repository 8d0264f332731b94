package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/store"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Manage levels",
}

var levelAddCmd = &cobra.Command{
	Use:   "add <number> <name>",
	Short: "Add a level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := parseNumber("level", args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}
		if next := cat.MaxLevelNumber() + 1; number > next {
			fmt.Fprintf(os.Stderr, "warning: level %d leaves a gap; the next level is %d\n", number, next)
		}

		lvl, err := st.Curriculum().CreateLevel(cmd.Context(), number, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Added level %d: %s\n", lvl.Number, lvl.Name)
		return nil
	},
}

var levelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and their lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}
		if len(cat.Levels()) == 0 {
			fmt.Println("No levels yet. Add some with `levelup level add` or `levelup curriculum import`.")
			return nil
		}
		for _, lvl := range cat.Levels() {
			lessons := cat.LessonsOf(lvl.ID)
			fmt.Printf("Level %d  %s  (%d lessons)\n", lvl.Number, lvl.Name, len(lessons))
		}
		return nil
	},
}

var levelRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Remove an empty level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := parseNumber("level", args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}
		lvl, ok := cat.LevelByNumber(number)
		if !ok {
			return fmt.Errorf("level %d: %w", number, store.ErrNotFound)
		}
		err = st.Curriculum().DeleteLevel(cmd.Context(), lvl.ID)
		if errors.Is(err, store.ErrLevelInUse) {
			return fmt.Errorf("level %d still has lessons or progress; move or remove them first", number)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Removed level %d\n", number)
		return nil
	},
}

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Manage lessons",
}

var lessonAddCmd = &cobra.Command{
	Use:   "add <level> <number> <name>",
	Short: "Add a lesson to a level",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelNum, err := parseNumber("level", args[0])
		if err != nil {
			return err
		}
		number, err := parseNumber("lesson", args[1])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}
		lvl, ok := cat.LevelByNumber(levelNum)
		if !ok {
			return fmt.Errorf("level %d: %w", levelNum, store.ErrNotFound)
		}
		lesson, err := st.Curriculum().CreateLesson(cmd.Context(), lvl.ID, number, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Added lesson %d.%d: %s\n", lvl.Number, lesson.Number, lesson.Name)
		return nil
	},
}

var lessonListCmd = &cobra.Command{
	Use:   "list [level]",
	Short: "List lessons, optionally for one level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}

		levels := cat.Levels()
		if len(args) == 1 {
			number, err := parseNumber("level", args[0])
			if err != nil {
				return err
			}
			lvl, ok := cat.LevelByNumber(number)
			if !ok {
				return fmt.Errorf("level %d: %w", number, store.ErrNotFound)
			}
			levels = []curriculum.Level{lvl}
		}

		fmt.Printf("%-7s  %-6s  %s\n", "Level", "Lesson", "Name")
		fmt.Println(strings.Repeat("─", 50))
		count := 0
		for _, lvl := range levels {
			for _, l := range cat.LessonsOf(lvl.ID) {
				fmt.Printf("%-7d  %-6d  %s\n", lvl.Number, l.Number, l.Name)
				count++
			}
		}
		fmt.Printf("\n%d lessons\n", count)
		return nil
	},
}

var lessonRmCmd = &cobra.Command{
	Use:   "rm <level> <number>",
	Short: "Remove a lesson and its progress rows",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lesson, err := findLesson(cmd.Context(), st, args[0], args[1])
		if err != nil {
			return err
		}
		if err := st.Curriculum().DeleteLesson(cmd.Context(), lesson.ID); err != nil {
			return err
		}
		fmt.Printf("Removed lesson %s.%s: %s\n", args[0], args[1], lesson.Name)
		return nil
	},
}

var lessonMoveCmd = &cobra.Command{
	Use:   "move <level> <number> <to-level> [new-number]",
	Short: "Move a lesson to another level, carrying its progress along",
	Long: `Move a lesson to another level, carrying its progress along.

Without new-number the lesson is appended after the last lesson of the
target level.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		toNum, err := parseNumber("level", args[2])
		if err != nil {
			return err
		}
		var newNum int
		if len(args) == 4 {
			if newNum, err = parseNumber("lesson", args[3]); err != nil {
				return err
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lesson, err := findLesson(cmd.Context(), st, args[0], args[1])
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cmd.Context(), st)
		if err != nil {
			return err
		}
		to, ok := cat.LevelByNumber(toNum)
		if !ok {
			return fmt.Errorf("level %d: %w", toNum, store.ErrNotFound)
		}
		got, err := st.Curriculum().MoveLesson(cmd.Context(), lesson.ID, to.ID, newNum)
		if err != nil {
			return err
		}
		fmt.Printf("Moved %q to lesson %d.%d\n", lesson.Name, to.Number, got)
		return nil
	},
}

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Import or check the curriculum",
}

var curriculumImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import levels and lessons from a JSON file",
	Long: `Import levels and lessons from a JSON file of the form

  {"levels": [{"number": 1, "name": "Foundations",
               "lessons": [{"number": 1, "name": "Counting"}]}]}

The file is validated before anything is written, and the import is
all-or-nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open curriculum: %w", err)
		}
		defer f.Close()

		seed, err := curriculum.ParseSeed(f)
		if err != nil {
			return err
		}
		levels, lessons := seed.Build(uuid.NewString)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Curriculum().Import(cmd.Context(), levels, lessons); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fmt.Errorf("%w\n\nThe file overlaps the existing curriculum", err)
			}
			return err
		}
		fmt.Printf("Imported %d levels and %d lessons\n", len(levels), len(lessons))
		return nil
	},
}

func init() {
	levelCmd.AddCommand(levelAddCmd, levelListCmd, levelRmCmd)
	lessonCmd.AddCommand(lessonAddCmd, lessonListCmd, lessonRmCmd, lessonMoveCmd)
	curriculumCmd.AddCommand(curriculumImportCmd)
}

// loadCatalog reads the whole curriculum.
func loadCatalog(ctx context.Context, st *store.Store) (*curriculum.Catalog, error) {
	levels, err := st.Curriculum().Levels(ctx)
	if err != nil {
		return nil, err
	}
	lessons, err := st.Curriculum().Lessons(ctx)
	if err != nil {
		return nil, err
	}
	return curriculum.NewCatalog(levels, lessons), nil
}

// findLesson resolves a lesson by level and lesson number arguments.
func findLesson(ctx context.Context, st *store.Store, levelArg, lessonArg string) (curriculum.Lesson, error) {
	levelNum, err := parseNumber("level", levelArg)
	if err != nil {
		return curriculum.Lesson{}, err
	}
	lessonNum, err := parseNumber("lesson", lessonArg)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	cat, err := loadCatalog(ctx, st)
	if err != nil {
		return curriculum.Lesson{}, err
	}
	lvl, ok := cat.LevelByNumber(levelNum)
	if !ok {
		return curriculum.Lesson{}, fmt.Errorf("level %d: %w", levelNum, store.ErrNotFound)
	}
	for _, l := range cat.LessonsOf(lvl.ID) {
		if l.Number == lessonNum {
			return l, nil
		}
	}
	return curriculum.Lesson{}, fmt.Errorf("lesson %d.%d: %w", levelNum, lessonNum, store.ErrNotFound)
}

func parseNumber(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number %q: want a positive integer", what, s)
	}
	return n, nil
}
