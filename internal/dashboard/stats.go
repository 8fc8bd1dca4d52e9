// Package dashboard reduces a task collection into display-ready values:
// summary statistics, the daily agenda, search filtering, the month grid
// for the calendar page, and the CSV export. Everything here is pure and
// total over any task slice, including an empty one.
package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/anikashraful/taskflow/internal/taskapi"
	"github.com/anikashraful/taskflow/internal/utils"
)

type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int

	HighPriority   int
	MediumPriority int
	LowPriority    int
}

// Compute derives the dashboard counters from the current task set. A task
// is overdue when its due instant precedes now and it is not completed; the
// comparison is full date-time, not date-only.
func Compute(tasks []taskapi.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case taskapi.StatusCompleted:
			s.Completed++
		case taskapi.StatusInProgress:
			s.InProgress++
		}
		if t.DueDate.Before(now) && t.Status != taskapi.StatusCompleted {
			s.Overdue++
		}
		switch t.Priority {
		case taskapi.PriorityHigh:
			s.HighPriority++
		case taskapi.PriorityMedium:
			s.MediumPriority++
		case taskapi.PriorityLow:
			s.LowPriority++
		}
	}
	return s
}

// Percent is round(count/total*100), 0 when the set is empty.
func Percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Trend returns the figure shown next to each summary counter. It is a
// placeholder, round(count/2), not a comparison against any earlier
// period. A real trend computation replaces this function without
// touching the rendering.
func Trend(count int) int {
	return int(math.Round(float64(count) / 2))
}

// ForToday keeps the tasks whose due date falls on the same calendar day
// as day, for the daily agenda.
func ForToday(tasks []taskapi.Task, day time.Time) []taskapi.Task {
	y, m, d := day.Date()
	return utils.Filter(tasks, func(t taskapi.Task) bool {
		ty, tm, td := t.DueDate.Date()
		return ty == y && tm == m && td == d
	})
}

// Search keeps the tasks whose name or project contains query,
// case-insensitively. An empty query returns the input unchanged. The
// filter runs client-side over the already-fetched set; there is no
// server-side search.
func Search(tasks []taskapi.Task, query string) []taskapi.Task {
	if query == "" {
		return tasks
	}
	q := strings.ToLower(query)
	return utils.Filter(tasks, func(t taskapi.Task) bool {
		return strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Project), q)
	})
}
