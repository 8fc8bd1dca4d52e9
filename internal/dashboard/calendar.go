package dashboard

import (
	"time"

	"github.com/anikashraful/taskflow/internal/taskapi"
)

// Cursor is the month a calendar view is positioned on. Navigation produces
// a new Cursor instead of mutating shared state, so the handler and the
// renderer never share anything hidden.
type Cursor struct {
	Year  int
	Month time.Month
}

func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Next moves one month forward, wrapping December into January of the next
// year.
func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// Prev moves one month back, wrapping January into December of the previous
// year.
func (c Cursor) Prev() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

type Day struct {
	Num   int
	Tasks []taskapi.Task
}

type Month struct {
	Cursor Cursor
	// Leading is the weekday index of day 1 (0 = Sunday), i.e. the number
	// of blank cells padding the first row of the grid.
	Leading int
	Days    []Day
}

// BuildMonth buckets tasks into the days of the cursor's month by
// date-only truncation of their due dates.
func BuildMonth(tasks []taskapi.Task, c Cursor) Month {
	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.Local)
	// day 0 of the next month is the last day of this one
	total := time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.Local).Day()

	m := Month{
		Cursor:  c,
		Leading: int(first.Weekday()),
		Days:    make([]Day, 0, total),
	}
	for num := 1; num <= total; num++ {
		day := Day{Num: num}
		for _, t := range tasks {
			ty, tm, td := t.DueDate.Date()
			if ty == c.Year && tm == c.Month && td == num {
				day.Tasks = append(day.Tasks, t)
			}
		}
		m.Days = append(m.Days, day)
	}
	return m
}
