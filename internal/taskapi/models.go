package taskapi

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Task struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Project   string   `json:"project"`
	DueDate   DateTime `json:"dueDate"`
	Priority  string   `json:"priority"`
	Assignees []string `json:"assignees"`
	Status    string   `json:"status"`
}

type TeamMember struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// Credentials is the signin response: the opaque token plus the profile
// cached alongside it for the lifetime of the session.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TaskPayload is the full task body the server expects on create and update.
type TaskPayload struct {
	Name      string   `json:"name"`
	Project   string   `json:"project"`
	DueDate   string   `json:"dueDate"`
	Priority  string   `json:"priority"`
	Assignees []string `json:"assignees"`
	Status    string   `json:"status"`
}

type UserUpdate struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// dueDateLayouts covers the formats the server is known to store: a bare
// date from a date input, a date-time from a datetime-local input, and
// RFC3339 variants.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateTime is a task due date as stored by the server. The raw wire string
// is retained so updates and CSV exports round-trip the stored value.
type DateTime struct {
	time.Time
	raw string
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	for _, layout := range dueDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			d.Time = t
			d.raw = s
			return nil
		}
	}
	return fmt.Errorf("due date: unrecognized format %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String returns the value exactly as received from the server, falling
// back to RFC3339 for locally constructed values.
func (d DateTime) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Format(time.RFC3339)
}

func ValidStatus(status string) bool {
	return status == StatusInProgress || status == StatusCompleted
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
