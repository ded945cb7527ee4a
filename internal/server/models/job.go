package models

// JobStatus is the job lifecycle state. A job starts pending and moves
// exactly once to completed or error; both are terminal.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusError     JobStatus = "error"
)

// Terminal reports whether s is one of the terminal states.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusError
}

// Job tracks a submitted document from upload to terminal outcome.
//
// DocumentKey is set at creation and never changes. ResultKey is empty
// while the job is pending; the terminal transition sets status and
// ResultKey together in a single atomic update.
type Job struct {
	ID               string
	UserID           string
	Status           JobStatus
	OriginalFileName string
	DocumentKey      string
	ResultKey        string
}
