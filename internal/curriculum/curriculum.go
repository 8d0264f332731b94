package curriculum

import "sort"

// Level is an ordered stage of the curriculum.
type Level struct {
	ID     string
	Number int
	Name   string
}

// Lesson is a unit of content belonging to exactly one level.
type Lesson struct {
	ID      string
	LevelID string
	Number  int
	Name    string
}

// Catalog indexes levels and lessons for lookups during progress resolution.
// A Catalog is read-only after construction.
type Catalog struct {
	levels        []Level
	lessons       []Lesson
	levelByID     map[string]Level
	levelByNumber map[int]Level
	lessonByID    map[string]Lesson
}

// NewCatalog builds a Catalog. Levels are kept sorted by number and lessons by
// (level number, lesson number). Inputs are copied.
func NewCatalog(levels []Level, lessons []Lesson) *Catalog {
	c := &Catalog{
		levels:        append([]Level(nil), levels...),
		lessons:       append([]Lesson(nil), lessons...),
		levelByID:     make(map[string]Level, len(levels)),
		levelByNumber: make(map[int]Level, len(levels)),
		lessonByID:    make(map[string]Lesson, len(lessons)),
	}
	for _, l := range c.levels {
		c.levelByID[l.ID] = l
		c.levelByNumber[l.Number] = l
	}
	for _, l := range c.lessons {
		c.lessonByID[l.ID] = l
	}

	sort.SliceStable(c.levels, func(i, j int) bool {
		return c.levels[i].Number < c.levels[j].Number
	})
	sort.SliceStable(c.lessons, func(i, j int) bool {
		li, lj := c.levelByID[c.lessons[i].LevelID].Number, c.levelByID[c.lessons[j].LevelID].Number
		if li != lj {
			return li < lj
		}
		return c.lessons[i].Number < c.lessons[j].Number
	})
	return c
}

// Levels returns all levels ordered by number.
func (c *Catalog) Levels() []Level {
	return append([]Level(nil), c.levels...)
}

// Lessons returns all lessons ordered by level number, then lesson number.
func (c *Catalog) Lessons() []Lesson {
	return append([]Lesson(nil), c.lessons...)
}

// Level looks up a level by ID.
func (c *Catalog) Level(id string) (Level, bool) {
	l, ok := c.levelByID[id]
	return l, ok
}

// LevelByNumber looks up a level by its number.
func (c *Catalog) LevelByNumber(n int) (Level, bool) {
	l, ok := c.levelByNumber[n]
	return l, ok
}

// Lesson looks up a lesson by ID.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.lessonByID[id]
	return l, ok
}

// LessonsOf returns the lessons of a level ordered by lesson number.
func (c *Catalog) LessonsOf(levelID string) []Lesson {
	var out []Lesson
	for _, l := range c.lessons {
		if l.LevelID == levelID {
			out = append(out, l)
		}
	}
	return out
}

// MaxLevelNumber returns the highest configured level number, or 0 when the
// catalog has no levels.
func (c *Catalog) MaxLevelNumber() int {
	if len(c.levels) == 0 {
		return 0
	}
	return c.levels[len(c.levels)-1].Number
}
