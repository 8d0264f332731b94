package progress

// Status is a student's state for one lesson.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusLocked, StatusInProgress, StatusCompleted}
}

// ParseStatus maps a stored string to a Status. Unknown values map to
// StatusLocked with ok=false.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusLocked, StatusInProgress, StatusCompleted:
		return Status(s), true
	default:
		return StatusLocked, false
	}
}

// DisplayName returns a human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	default:
		return "Locked"
	}
}

// Record is one progress row joined with its level and lesson.
// LevelNumber is 0 when the row points at a level that no longer exists.
type Record struct {
	RowID        string
	StudentID    string
	LessonID     string
	LevelID      string
	LevelNumber  int
	LessonNumber int
	LessonName   string
	Status       Status
}
