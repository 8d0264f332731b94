package progress

import (
	"sort"

	"github.com/abhisek/levelup/internal/curriculum"
)

// DefaultMaxLevel is the level ceiling used when no levels are configured.
const DefaultMaxLevel = 5

// TieBreak selects the current level when several records are in progress.
type TieBreak string

const (
	// TieBreakFirst picks the first in-progress record in input order. The
	// choice is arbitrary among simultaneous in-progress rows but stable for
	// a fixed input order.
	TieBreakFirst TieBreak = "first"

	// TieBreakLowest picks the smallest in-progress level number.
	TieBreakLowest TieBreak = "lowest"
)

// ParseTieBreak maps a config string to a TieBreak. Unknown values fall back
// to TieBreakFirst with ok=false.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch TieBreak(s) {
	case TieBreakFirst, TieBreakLowest:
		return TieBreak(s), true
	default:
		return TieBreakFirst, false
	}
}

// Config holds engine settings.
type Config struct {
	MaxLevel int
	TieBreak TieBreak
}

// DefaultConfig returns the historical settings: five levels, first
// in-progress record wins.
func DefaultConfig() Config {
	return Config{
		MaxLevel: DefaultMaxLevel,
		TieBreak: TieBreakFirst,
	}
}

// MaxLevelOf derives the level ceiling from the configured levels.
// Returns DefaultMaxLevel when levels is empty.
func MaxLevelOf(levels []curriculum.Level) int {
	highest := 0
	for _, l := range levels {
		if l.Number > highest {
			highest = l.Number
		}
	}
	if highest < 1 {
		return DefaultMaxLevel
	}
	return highest
}

// ConfigFor returns DefaultConfig with the ceiling derived from levels.
func ConfigFor(levels []curriculum.Level) Config {
	cfg := DefaultConfig()
	cfg.MaxLevel = MaxLevelOf(levels)
	return cfg
}

// Engine derives level and completion state from a snapshot of one
// student's progress records. It holds no mutable state and never modifies
// its inputs, so one Engine may be shared across goroutines.
type Engine struct {
	cfg Config
}

// New creates an Engine. A non-positive MaxLevel is replaced by
// DefaultMaxLevel and an unknown TieBreak by TieBreakFirst.
func New(cfg Config) Engine {
	if cfg.MaxLevel < 1 {
		cfg.MaxLevel = DefaultMaxLevel
	}
	if _, ok := ParseTieBreak(string(cfg.TieBreak)); !ok {
		cfg.TieBreak = TieBreakFirst
	}
	return Engine{cfg: cfg}
}

// Config returns the effective engine configuration.
func (e Engine) Config() Config {
	return e.cfg
}

// CurrentLevel returns the level the student is working through, always in
// [1, MaxLevel]:
//
//   - an in-progress record's level, chosen by the TieBreak policy;
//   - otherwise one past the highest completed level, capped at MaxLevel;
//   - otherwise 1.
//
// Records with an unknown level (LevelNumber < 1) are ignored.
func (e Engine) CurrentLevel(records []Record) int {
	if lvl, ok := e.inProgressLevel(records); ok {
		return e.clamp(lvl)
	}

	maxCompleted := 0
	for _, r := range records {
		if r.Status == StatusCompleted && r.LevelNumber > maxCompleted {
			maxCompleted = r.LevelNumber
		}
	}
	if maxCompleted > 0 {
		return e.clamp(maxCompleted + 1)
	}

	return 1
}

func (e Engine) inProgressLevel(records []Record) (int, bool) {
	found := false
	lvl := 0
	for _, r := range records {
		if r.Status != StatusInProgress || r.LevelNumber < 1 {
			continue
		}
		switch {
		case !found:
			lvl, found = r.LevelNumber, true
			if e.cfg.TieBreak == TieBreakFirst {
				return lvl, true
			}
		case r.LevelNumber < lvl:
			lvl = r.LevelNumber
		}
	}
	return lvl, found
}

func (e Engine) clamp(lvl int) int {
	if lvl < 1 {
		return 1
	}
	if lvl > e.cfg.MaxLevel {
		return e.cfg.MaxLevel
	}
	return lvl
}

// CurrentLessons returns the records belonging to level, in input order.
// The result is empty, never nil, when the level has no records.
func (e Engine) CurrentLessons(records []Record, level int) []Record {
	return LevelRecords(records, level)
}

// LevelPercent returns the share of the level's records that are completed,
// rounded half up to an integer percentage. A level without records is 0%.
// The result does not depend on record order.
func (e Engine) LevelPercent(records []Record, level int) int {
	return LevelPercent(records, level)
}

// LevelRecords filters records to one level, preserving input order.
func LevelRecords(records []Record, level int) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.LevelNumber == level {
			out = append(out, r)
		}
	}
	return out
}

// LevelPercent is the package-level form of Engine.LevelPercent. It does not
// depend on engine configuration.
func LevelPercent(records []Record, level int) int {
	total, completed := 0, 0
	for _, r := range records {
		if r.LevelNumber != level {
			continue
		}
		total++
		if r.Status == StatusCompleted {
			completed++
		}
	}
	return roundPercent(completed, total)
}

// roundPercent computes round(100*part/total) with halves rounded up.
func roundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// SortByLessonNumber returns a copy of records ordered by lesson number.
// Ties keep their input order.
func SortByLessonNumber(records []Record) []Record {
	out := append(make([]Record, 0, len(records)), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LessonNumber < out[j].LessonNumber
	})
	return out
}
