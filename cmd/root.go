package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/progress"
	"github.com/abhisek/levelup/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Student progress dashboard",
	Long:  "levelup tracks students through levels and lessons and shows parents where their child is.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEVELUP_DB env var)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEVELUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// dashboardOptions reads engine settings from the environment:
//
//	LEVELUP_MAX_LEVEL   level ceiling; unset derives it from the curriculum
//	LEVELUP_TIEBREAK    first | lowest
//	LEVELUP_MEMBERSHIP  stored | lesson
//
// Invalid values are reported on stderr and ignored.
func dashboardOptions() dashboard.Options {
	opts := dashboard.DefaultOptions()

	if v := os.Getenv("LEVELUP_MAX_LEVEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "warning: ignoring LEVELUP_MAX_LEVEL=%q: want a positive integer\n", v)
		} else {
			opts.MaxLevel = n
		}
	}

	if v := os.Getenv("LEVELUP_TIEBREAK"); v != "" {
		tb, ok := progress.ParseTieBreak(v)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: ignoring LEVELUP_TIEBREAK=%q: want first or lowest\n", v)
		}
		opts.TieBreak = tb
	}

	switch v := os.Getenv("LEVELUP_MEMBERSHIP"); v {
	case "", "stored":
	case "lesson":
		opts.Membership = progress.MembershipLesson
	default:
		fmt.Fprintf(os.Stderr, "warning: ignoring LEVELUP_MEMBERSHIP=%q: want stored or lesson\n", v)
	}

	return opts
}
