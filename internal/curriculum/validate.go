package curriculum

import (
	"fmt"
	"sort"
	"strings"
)

// Validate performs structural checks on a curriculum.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(levels []Level, lessons []Lesson) error {
	var errs []string

	levelIDs := make(map[string]bool, len(levels))
	numbers := make(map[int]string, len(levels))

	for _, l := range levels {
		if levelIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate level ID: %q", l.ID))
		}
		levelIDs[l.ID] = true

		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, fmt.Sprintf("level %d has an empty name", l.Number))
		}
		if l.Number < 1 {
			errs = append(errs, fmt.Sprintf("level %q: number must be >= 1, got %d", l.Name, l.Number))
			continue
		}
		if other, ok := numbers[l.Number]; ok {
			errs = append(errs, fmt.Sprintf("duplicate level number %d (%q and %q)", l.Number, other, l.Name))
			continue
		}
		numbers[l.Number] = l.Name
	}

	// Level numbers must form 1..N without gaps.
	var sorted []int
	for n := range numbers {
		sorted = append(sorted, n)
	}
	sort.Ints(sorted)
	for i, n := range sorted {
		if n != i+1 {
			errs = append(errs, fmt.Sprintf("level numbers are not contiguous: expected %d, found %d", i+1, n))
			break
		}
	}

	lessonIDs := make(map[string]bool, len(lessons))
	perLevel := make(map[string]map[int]bool)
	for _, l := range lessons {
		if lessonIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonIDs[l.ID] = true

		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has an empty name", l.ID))
		}
		if !levelIDs[l.LevelID] {
			errs = append(errs, fmt.Sprintf("lesson %q references nonexistent level %q", l.Name, l.LevelID))
			continue
		}
		if perLevel[l.LevelID] == nil {
			perLevel[l.LevelID] = make(map[int]bool)
		}
		if perLevel[l.LevelID][l.Number] {
			errs = append(errs, fmt.Sprintf("duplicate lesson number %d in level %q", l.Number, l.LevelID))
		}
		perLevel[l.LevelID][l.Number] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
