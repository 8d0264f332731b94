package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Seed is a curriculum definition file used to bootstrap levels and lessons.
type Seed struct {
	Levels []SeedLevel `json:"levels"`
}

// SeedLevel is one level in a seed file.
type SeedLevel struct {
	Number  int          `json:"number"`
	Name    string       `json:"name"`
	Lessons []SeedLesson `json:"lessons"`
}

// SeedLesson is one lesson in a seed file.
type SeedLesson struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

const seedSchemaURL = "schema://curriculum-seed.json"

var seedSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"levels"},
	"properties": map[string]any{
		"levels": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"number", "name"},
				"additionalProperties": false,
				"properties": map[string]any{
					"number": map[string]any{"type": "integer", "minimum": 1},
					"name":   map[string]any{"type": "string", "minLength": 1},
					"lessons": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"required":             []any{"number", "name"},
							"additionalProperties": false,
							"properties": map[string]any{
								"number": map[string]any{"type": "integer", "minimum": 1},
								"name":   map[string]any{"type": "string", "minLength": 1},
							},
						},
					},
				},
			},
		},
	},
}

var (
	seedSchemaOnce sync.Once
	seedSchema     *jsonschema.Schema
	seedSchemaErr  error
)

func compiledSeedSchema() (*jsonschema.Schema, error) {
	seedSchemaOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(seedSchemaDef)
		if err != nil {
			seedSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			seedSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(seedSchemaURL, defParsed); err != nil {
			seedSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		seedSchema, seedSchemaErr = c.Compile(seedSchemaURL)
	})
	return seedSchema, seedSchemaErr
}

// ParseSeed reads a seed file, validates it against the seed JSON schema and
// checks the resulting curriculum structure.
func ParseSeed(r io.Reader) (*Seed, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSeedSchema()
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed schema validation failed: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	levels, lessons := seed.Build(placeholderIDs())
	if err := Validate(levels, lessons); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Build converts the seed into levels and lessons, assigning IDs with newID.
func (s *Seed) Build(newID func() string) ([]Level, []Lesson) {
	var levels []Level
	var lessons []Lesson
	for _, sl := range s.Levels {
		lvl := Level{ID: newID(), Number: sl.Number, Name: sl.Name}
		levels = append(levels, lvl)
		for _, ls := range sl.Lessons {
			lessons = append(lessons, Lesson{
				ID:      newID(),
				LevelID: lvl.ID,
				Number:  ls.Number,
				Name:    ls.Name,
			})
		}
	}
	return levels, lessons
}

// placeholderIDs yields unique IDs for structural validation only.
func placeholderIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("seed-%d", n)
	}
}
