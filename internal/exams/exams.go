package exams

import "time"

// Result is one exam outcome for a student.
type Result struct {
	ID        string
	StudentID string
	Name      string
	Score     int
	MaxScore  int
	Date      time.Time
}

// Band classifies a score for display.
type Band int

const (
	BandPoor Band = iota
	BandFair
	BandGood
	BandExcellent
)

// Band thresholds, as a percentage of the maximum score.
const (
	ExcellentThreshold = 90.0
	GoodThreshold      = 70.0
	FairThreshold      = 50.0
)

// Percent returns score as a percentage of maxScore. A non-positive maxScore yields 0.
func Percent(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}

// BandOf classifies score out of maxScore.
func BandOf(score, maxScore int) Band {
	p := Percent(score, maxScore)
	switch {
	case p >= ExcellentThreshold:
		return BandExcellent
	case p >= GoodThreshold:
		return BandGood
	case p >= FairThreshold:
		return BandFair
	default:
		return BandPoor
	}
}

// Band returns the result's score band.
func (r Result) Band() Band {
	return BandOf(r.Score, r.MaxScore)
}

// String returns the band's display name.
func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "excellent"
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	default:
		return "poor"
	}
}
