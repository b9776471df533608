// Package jobs tracks asynchronous statement-parsing work. Jobs live in
// memory only; a restart loses them, which is acceptable because parsing a
// statement takes seconds and clients simply resubmit.
package jobs

import (
	"time"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Status is the lifecycle state of a parse job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job is one asynchronous statement parse.
type Job struct {
	ID        string     `json:"id"`
	Filename  string     `json:"filename"`
	Bank      string     `json:"bank,omitempty"`
	Status    Status     `json:"status"`
	Progress  int        `json:"progress"`
	Message   string     `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	Transactions []models.Transaction `json:"transactions,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j *Job) Done() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}
