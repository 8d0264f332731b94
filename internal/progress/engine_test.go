package progress

import (
	"math/rand"
	"testing"

	"github.com/abhisek/levelup/internal/curriculum"
)

func rec(level int, lesson string, status Status) Record {
	return Record{LessonID: lesson, LessonName: lesson, LevelNumber: level, Status: status}
}

func defaultEngine() Engine {
	return New(DefaultConfig())
}

func TestCurrentLevel_EmptyIsOne(t *testing.T) {
	e := defaultEngine()
	if got := e.CurrentLevel(nil); got != 1 {
		t.Errorf("CurrentLevel(nil) = %d, want 1", got)
	}
}

func TestCurrentLevel_InProgressWins(t *testing.T) {
	e := defaultEngine()
	records := []Record{
		rec(1, "A", StatusCompleted),
		rec(1, "B", StatusCompleted),
		rec(2, "C", StatusInProgress),
	}
	if got := e.CurrentLevel(records); got != 2 {
		t.Errorf("CurrentLevel = %d, want 2", got)
	}
	if got := e.LevelPercent(records, 1); got != 100 {
		t.Errorf("LevelPercent(1) = %d, want 100", got)
	}
	if got := e.LevelPercent(records, 2); got != 0 {
		t.Errorf("LevelPercent(2) = %d, want 0", got)
	}
}

func TestCurrentLevel_NextAfterCompleted(t *testing.T) {
	e := defaultEngine()
	records := []Record{
		rec(1, "A", StatusCompleted),
		rec(1, "B", StatusLocked),
	}
	if got := e.CurrentLevel(records); got != 2 {
		t.Errorf("CurrentLevel = %d, want 2", got)
	}
}

func TestCurrentLevel_CeilingClamp(t *testing.T) {
	e := defaultEngine()
	records := []Record{rec(5, "Z", StatusCompleted)}
	if got := e.CurrentLevel(records); got != 5 {
		t.Errorf("CurrentLevel = %d, want 5", got)
	}
}

func TestCurrentLevel_CompletedAboveCeiling(t *testing.T) {
	e := defaultEngine()
	records := []Record{rec(7, "Z", StatusCompleted)}
	if got := e.CurrentLevel(records); got != 5 {
		t.Errorf("CurrentLevel = %d, want 5", got)
	}
}

func TestCurrentLevel_OnlyLockedIsOne(t *testing.T) {
	e := defaultEngine()
	records := []Record{rec(3, "A", StatusLocked), rec(4, "B", StatusLocked)}
	if got := e.CurrentLevel(records); got != 1 {
		t.Errorf("CurrentLevel = %d, want 1", got)
	}
}

func TestCurrentLevel_SkipsOrphanedRecords(t *testing.T) {
	e := defaultEngine()
	records := []Record{
		rec(0, "gone", StatusInProgress),
		rec(2, "B", StatusCompleted),
	}
	if got := e.CurrentLevel(records); got != 3 {
		t.Errorf("CurrentLevel = %d, want 3", got)
	}
}

func TestCurrentLevel_TieBreakFirst(t *testing.T) {
	e := defaultEngine()
	records := []Record{
		rec(3, "C", StatusInProgress),
		rec(2, "B", StatusInProgress),
	}
	first := e.CurrentLevel(records)
	if first != 3 {
		t.Errorf("CurrentLevel = %d, want 3 (first in input order)", first)
	}
	for i := 0; i < 10; i++ {
		if got := e.CurrentLevel(records); got != first {
			t.Fatalf("call %d: CurrentLevel = %d, want stable %d", i, got, first)
		}
	}

	reversed := []Record{records[1], records[0]}
	if got := e.CurrentLevel(reversed); got != 2 {
		t.Errorf("CurrentLevel(reversed) = %d, want 2", got)
	}
}

func TestCurrentLevel_TieBreakLowest(t *testing.T) {
	e := New(Config{MaxLevel: 5, TieBreak: TieBreakLowest})
	records := []Record{
		rec(3, "C", StatusInProgress),
		rec(2, "B", StatusInProgress),
		rec(4, "D", StatusInProgress),
	}
	if got := e.CurrentLevel(records); got != 2 {
		t.Errorf("CurrentLevel = %d, want 2", got)
	}
}

func TestCurrentLevel_DerivedCeiling(t *testing.T) {
	levels := []curriculum.Level{{Number: 1}, {Number: 2}, {Number: 3}}
	e := New(ConfigFor(levels))
	records := []Record{rec(3, "Z", StatusCompleted)}
	if got := e.CurrentLevel(records); got != 3 {
		t.Errorf("CurrentLevel = %d, want 3", got)
	}

	records = []Record{rec(2, "Y", StatusCompleted)}
	if got := e.CurrentLevel(records); got != 3 {
		t.Errorf("CurrentLevel = %d, want 3", got)
	}
}

func TestCurrentLevel_InProgressAboveCeilingClamped(t *testing.T) {
	e := New(Config{MaxLevel: 3, TieBreak: TieBreakFirst})
	records := []Record{rec(4, "X", StatusInProgress)}
	if got := e.CurrentLevel(records); got != 3 {
		t.Errorf("CurrentLevel = %d, want 3", got)
	}
}

func TestNew_NormalizesConfig(t *testing.T) {
	e := New(Config{MaxLevel: 0, TieBreak: "newest"})
	cfg := e.Config()
	if cfg.MaxLevel != DefaultMaxLevel {
		t.Errorf("MaxLevel = %d, want %d", cfg.MaxLevel, DefaultMaxLevel)
	}
	if cfg.TieBreak != TieBreakFirst {
		t.Errorf("TieBreak = %q, want %q", cfg.TieBreak, TieBreakFirst)
	}
}

func TestMaxLevelOf(t *testing.T) {
	if got := MaxLevelOf(nil); got != DefaultMaxLevel {
		t.Errorf("MaxLevelOf(nil) = %d, want %d", got, DefaultMaxLevel)
	}
	levels := []curriculum.Level{{Number: 2}, {Number: 7}, {Number: 1}}
	if got := MaxLevelOf(levels); got != 7 {
		t.Errorf("MaxLevelOf = %d, want 7", got)
	}
}

func TestCurrentLessons_FiltersAndKeepsOrder(t *testing.T) {
	e := defaultEngine()
	records := []Record{
		rec(2, "B2", StatusLocked),
		rec(1, "A1", StatusCompleted),
		rec(2, "B1", StatusInProgress),
	}
	got := e.CurrentLessons(records, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].LessonID != "B2" || got[1].LessonID != "B1" {
		t.Errorf("order = [%s %s], want [B2 B1]", got[0].LessonID, got[1].LessonID)
	}
}

func TestCurrentLessons_EmptyNotNil(t *testing.T) {
	e := defaultEngine()
	got := e.CurrentLessons(nil, 1)
	if got == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestCurrentLessons_DoesNotAliasInput(t *testing.T) {
	e := defaultEngine()
	records := []Record{rec(1, "A", StatusLocked)}
	got := e.CurrentLessons(records, 1)
	got[0].Status = StatusCompleted
	if records[0].Status != StatusLocked {
		t.Error("CurrentLessons mutated its input")
	}
}

func TestLevelPercent(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		level   int
		want    int
	}{
		{"no records", nil, 1, 0},
		{"other level only", []Record{rec(2, "A", StatusCompleted)}, 1, 0},
		{"all complete", []Record{rec(1, "A", StatusCompleted), rec(1, "B", StatusCompleted)}, 1, 100},
		{"one of three", []Record{rec(1, "A", StatusCompleted), rec(1, "B", StatusLocked), rec(1, "C", StatusInProgress)}, 1, 33},
		{"two of three", []Record{rec(1, "A", StatusCompleted), rec(1, "B", StatusCompleted), rec(1, "C", StatusLocked)}, 1, 67},
		{"half rounds up", []Record{
			rec(1, "A", StatusCompleted), rec(1, "B", StatusLocked), rec(1, "C", StatusLocked), rec(1, "D", StatusLocked),
			rec(1, "E", StatusLocked), rec(1, "F", StatusLocked), rec(1, "G", StatusLocked), rec(1, "H", StatusLocked),
		}, 1, 13}, // 12.5
		{"one of two", []Record{rec(1, "A", StatusCompleted), rec(1, "B", StatusLocked)}, 1, 50},
		{"in progress is not complete", []Record{rec(1, "A", StatusInProgress)}, 1, 0},
	}

	e := defaultEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.LevelPercent(tt.records, tt.level); got != tt.want {
				t.Errorf("LevelPercent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 8, 13},  // 12.5
		{3, 8, 38},  // 37.5
		{1, 200, 1}, // 0.5
		{1, 201, 0}, // 0.497
		{2, 3, 67},
	}
	for _, tt := range tests {
		if got := roundPercent(tt.part, tt.total); got != tt.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestSortByLessonNumber(t *testing.T) {
	records := []Record{
		{LessonID: "c", LessonNumber: 3},
		{LessonID: "a", LessonNumber: 1},
		{LessonID: "b1", LessonNumber: 2},
		{LessonID: "b2", LessonNumber: 2},
	}
	got := SortByLessonNumber(records)
	want := []string{"a", "b1", "b2", "c"}
	for i, id := range want {
		if got[i].LessonID != id {
			t.Errorf("got[%d] = %q, want %q", i, got[i].LessonID, id)
		}
	}
	if records[0].LessonID != "c" {
		t.Error("SortByLessonNumber reordered its input")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		got, ok := ParseStatus(string(s))
		if !ok || got != s {
			t.Errorf("ParseStatus(%q) = %q, %v", s, got, ok)
		}
	}
	got, ok := ParseStatus("archived")
	if ok || got != StatusLocked {
		t.Errorf("ParseStatus(unknown) = %q, %v; want locked, false", got, ok)
	}
}

// randomRecords builds a reproducible record set with levels in [0, 7].
func randomRecords(r *rand.Rand) []Record {
	statuses := AllStatuses()
	n := r.Intn(12)
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			LessonID:    string(rune('a' + i)),
			LevelNumber: r.Intn(8),
			Status:      statuses[r.Intn(len(statuses))],
		}
	}
	return out
}

func TestProperties_Randomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	engines := []Engine{
		defaultEngine(),
		New(Config{MaxLevel: 5, TieBreak: TieBreakLowest}),
	}

	for i := 0; i < 500; i++ {
		records := randomRecords(r)
		for _, e := range engines {
			lvl := e.CurrentLevel(records)
			if lvl < 1 || lvl > 5 {
				t.Fatalf("CurrentLevel = %d out of [1,5] for %+v", lvl, records)
			}

			var inProgress []int
			maxCompleted := 0
			for _, rc := range records {
				if rc.LevelNumber < 1 {
					continue
				}
				if rc.Status == StatusInProgress && rc.LevelNumber <= 5 {
					inProgress = append(inProgress, rc.LevelNumber)
				}
				if rc.Status == StatusCompleted && rc.LevelNumber > maxCompleted {
					maxCompleted = rc.LevelNumber
				}
			}
			if len(inProgress) > 0 {
				found := false
				for _, l := range inProgress {
					if l == lvl {
						found = true
					}
				}
				hasHigh := false
				for _, rc := range records {
					if rc.Status == StatusInProgress && rc.LevelNumber > 5 {
						hasHigh = true
					}
				}
				if !found && !hasHigh {
					t.Fatalf("CurrentLevel = %d not among in-progress levels %v", lvl, inProgress)
				}
			}

			hasInProgress := false
			for _, rc := range records {
				if rc.Status == StatusInProgress && rc.LevelNumber >= 1 {
					hasInProgress = true
				}
			}
			if !hasInProgress && maxCompleted > 0 {
				want := maxCompleted + 1
				if want > 5 {
					want = 5
				}
				if lvl != want {
					t.Fatalf("CurrentLevel = %d, want %d (max completed %d)", lvl, want, maxCompleted)
				}
			}

			// Order independence of percentages.
			shuffled := append([]Record(nil), records...)
			r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			for level := 1; level <= 5; level++ {
				p1 := e.LevelPercent(records, level)
				p2 := e.LevelPercent(shuffled, level)
				if p1 != p2 {
					t.Fatalf("LevelPercent(%d) order dependent: %d vs %d", level, p1, p2)
				}
				if p1 < 0 || p1 > 100 {
					t.Fatalf("LevelPercent(%d) = %d out of range", level, p1)
				}
				if again := e.LevelPercent(records, level); again != p1 {
					t.Fatalf("LevelPercent(%d) not idempotent: %d vs %d", level, p1, again)
				}
			}
		}
	}
}

func TestEmptyInputDefaults(t *testing.T) {
	e := defaultEngine()
	if got := e.CurrentLevel([]Record{}); got != 1 {
		t.Errorf("CurrentLevel = %d, want 1", got)
	}
	if got := e.CurrentLessons([]Record{}, 1); len(got) != 0 {
		t.Errorf("CurrentLessons len = %d, want 0", len(got))
	}
	for level := 1; level <= 5; level++ {
		if got := e.LevelPercent([]Record{}, level); got != 0 {
			t.Errorf("LevelPercent(%d) = %d, want 0", level, got)
		}
	}
}
