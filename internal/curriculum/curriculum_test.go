package curriculum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCurriculum() ([]Level, []Lesson) {
	levels := []Level{
		{ID: "l2", Number: 2, Name: "Builders"},
		{ID: "l1", Number: 1, Name: "Explorers"},
		{ID: "l3", Number: 3, Name: "Makers"},
	}
	lessons := []Lesson{
		{ID: "a2", LevelID: "l1", Number: 2, Name: "Loops"},
		{ID: "a1", LevelID: "l1", Number: 1, Name: "Sprites"},
		{ID: "b1", LevelID: "l2", Number: 1, Name: "Variables"},
	}
	return levels, lessons
}

func TestNewCatalog_SortsLevelsAndLessons(t *testing.T) {
	c := NewCatalog(sampleCurriculum())

	levels := c.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{levels[0].Number, levels[1].Number, levels[2].Number})

	lessons := c.Lessons()
	require.Len(t, lessons, 3)
	assert.Equal(t, "a1", lessons[0].ID)
	assert.Equal(t, "a2", lessons[1].ID)
	assert.Equal(t, "b1", lessons[2].ID)
}

func TestCatalog_Lookups(t *testing.T) {
	c := NewCatalog(sampleCurriculum())

	lvl, ok := c.Level("l2")
	require.True(t, ok)
	assert.Equal(t, 2, lvl.Number)

	lvl, ok = c.LevelByNumber(3)
	require.True(t, ok)
	assert.Equal(t, "l3", lvl.ID)

	_, ok = c.Level("missing")
	assert.False(t, ok)

	lesson, ok := c.Lesson("b1")
	require.True(t, ok)
	assert.Equal(t, "l2", lesson.LevelID)

	of := c.LessonsOf("l1")
	require.Len(t, of, 2)
	assert.Equal(t, 1, of[0].Number)
	assert.Empty(t, c.LessonsOf("l3"))
}

func TestCatalog_MaxLevelNumber(t *testing.T) {
	if got := NewCatalog(nil, nil).MaxLevelNumber(); got != 0 {
		t.Errorf("empty catalog MaxLevelNumber = %d, want 0", got)
	}
	if got := NewCatalog(sampleCurriculum()).MaxLevelNumber(); got != 3 {
		t.Errorf("MaxLevelNumber = %d, want 3", got)
	}
}

func TestCatalog_DoesNotAliasInputs(t *testing.T) {
	levels, lessons := sampleCurriculum()
	c := NewCatalog(levels, lessons)
	levels[0].Name = "changed"

	lvl, _ := c.Level("l2")
	if lvl.Name != "Builders" {
		t.Errorf("catalog level name = %q, want %q", lvl.Name, "Builders")
	}
}

func TestValidate_SamplePasses(t *testing.T) {
	if err := Validate(sampleCurriculum()); err != nil {
		t.Fatalf("sample curriculum failed validation: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name    string
		levels  []Level
		lessons []Lesson
		want    string
	}{
		{
			name:   "gap in level numbers",
			levels: []Level{{ID: "a", Number: 1, Name: "One"}, {ID: "b", Number: 3, Name: "Three"}},
			want:   "not contiguous",
		},
		{
			name:   "does not start at one",
			levels: []Level{{ID: "a", Number: 2, Name: "Two"}},
			want:   "not contiguous",
		},
		{
			name:   "duplicate level number",
			levels: []Level{{ID: "a", Number: 1, Name: "One"}, {ID: "b", Number: 1, Name: "Uno"}},
			want:   "duplicate level number",
		},
		{
			name:   "non-positive level number",
			levels: []Level{{ID: "a", Number: 0, Name: "Zero"}},
			want:   "must be >= 1",
		},
		{
			name:   "empty level name",
			levels: []Level{{ID: "a", Number: 1, Name: " "}},
			want:   "empty name",
		},
		{
			name:    "dangling lesson",
			levels:  []Level{{ID: "a", Number: 1, Name: "One"}},
			lessons: []Lesson{{ID: "x", LevelID: "nope", Number: 1, Name: "Intro"}},
			want:    "nonexistent level",
		},
		{
			name:   "duplicate lesson number",
			levels: []Level{{ID: "a", Number: 1, Name: "One"}},
			lessons: []Lesson{
				{ID: "x", LevelID: "a", Number: 1, Name: "Intro"},
				{ID: "y", LevelID: "a", Number: 1, Name: "Intro again"},
			},
			want: "duplicate lesson number",
		},
		{
			name:   "duplicate level id",
			levels: []Level{{ID: "a", Number: 1, Name: "One"}, {ID: "a", Number: 2, Name: "Two"}},
			want:   "duplicate level ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.levels, tt.lessons)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSeed_Valid(t *testing.T) {
	input := `{
		"levels": [
			{"number": 1, "name": "Explorers", "lessons": [
				{"number": 1, "name": "Sprites"},
				{"number": 2, "name": "Loops"}
			]},
			{"number": 2, "name": "Builders"}
		]
	}`
	seed, err := ParseSeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, seed.Levels, 2)

	levels, lessons := seed.Build(placeholderIDs())
	require.Len(t, levels, 2)
	require.Len(t, lessons, 2)
	assert.Equal(t, levels[0].ID, lessons[0].LevelID)
	assert.Equal(t, levels[0].ID, lessons[1].LevelID)
}

func TestParseSeed_SchemaViolation(t *testing.T) {
	inputs := map[string]string{
		"missing levels":     `{}`,
		"zero level number":  `{"levels": [{"number": 0, "name": "Zero"}]}`,
		"unknown lesson key": `{"levels": [{"number": 1, "name": "One", "lessons": [{"number": 1, "name": "A", "extra": true}]}]}`,
		"not json":           `levels:`,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseSeed_StructuralViolation(t *testing.T) {
	input := `{"levels": [{"number": 1, "name": "One"}, {"number": 3, "name": "Three"}]}`
	_, err := ParseSeed(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not contiguous")
}
