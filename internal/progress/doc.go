// Package progress resolves a student's current level and completion
// percentages from an unordered snapshot of lesson progress records.
//
// Every function here is pure: callers fetch one snapshot per render and pass
// the same records to CurrentLevel, CurrentLessons and LevelPercent (or use
// Summarize, which does all three) so the derived values agree with each
// other. Malformed input degrades to the empty-student defaults: level 1, no
// lessons, 0%.
package progress
