package progress

import "github.com/abhisek/levelup/internal/curriculum"

// LevelState is a level's position relative to the student's current level.
type LevelState int

const (
	LevelUpcoming LevelState = iota
	LevelCurrent
	LevelDone
)

// LevelProgress is one entry of the course-wide level track.
type LevelProgress struct {
	Level   curriculum.Level
	Percent int
	State   LevelState
}

// Summary is everything a dashboard needs from one snapshot of a student's
// progress. All fields are derived from the same records.
type Summary struct {
	CurrentLevel   int
	CurrentLessons []Record
	CurrentPercent int
	Levels         []LevelProgress

	// TrackPercent is how far along the level track the current level sits:
	// 0 at the first level, 100 at the last.
	TrackPercent int
}

// Summarize resolves the current level, its lessons and the per-level
// percentages in one pass. levels should be ordered by number.
func (e Engine) Summarize(records []Record, levels []curriculum.Level) Summary {
	current := e.CurrentLevel(records)

	s := Summary{
		CurrentLevel:   current,
		CurrentLessons: e.CurrentLessons(records, current),
		CurrentPercent: e.LevelPercent(records, current),
		Levels:         make([]LevelProgress, 0, len(levels)),
	}

	for _, l := range levels {
		lp := LevelProgress{
			Level:   l,
			Percent: e.LevelPercent(records, l.Number),
		}
		switch {
		case l.Number < current:
			lp.State = LevelDone
		case l.Number == current:
			lp.State = LevelCurrent
		default:
			lp.State = LevelUpcoming
		}
		s.Levels = append(s.Levels, lp)
	}

	if len(levels) > 1 {
		s.TrackPercent = roundPercent(current-1, len(levels)-1)
		if s.TrackPercent > 100 {
			s.TrackPercent = 100
		}
	}
	return s
}

// CurrentLevelName returns the name of the current level, or "" when the
// level is not part of levels.
func (s Summary) CurrentLevelName() string {
	for _, lp := range s.Levels {
		if lp.State == LevelCurrent {
			return lp.Level.Name
		}
	}
	return ""
}
