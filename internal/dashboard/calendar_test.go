package dashboard

import (
	"testing"
	"time"

	"github.com/anikashraful/taskflow/internal/taskapi"
)

func TestBuildMonthDayCounts(t *testing.T) {
	cases := []struct {
		cursor Cursor
		want   int
	}{
		{Cursor{2024, time.February}, 29}, // leap year
		{Cursor{2023, time.February}, 28},
		{Cursor{2025, time.January}, 31},
		{Cursor{2025, time.April}, 30},
		{Cursor{2025, time.December}, 31},
	}

	for _, tc := range cases {
		month := BuildMonth(nil, tc.cursor)
		if len(month.Days) != tc.want {
			t.Errorf("%s %d: %d days, want %d", tc.cursor.Month, tc.cursor.Year, len(month.Days), tc.want)
		}
	}
}

func TestBuildMonthLeadingBlanks(t *testing.T) {
	// 1 February 2024 was a Thursday
	month := BuildMonth(nil, Cursor{2024, time.February})
	if month.Leading != 4 {
		t.Errorf("Leading = %d, want 4", month.Leading)
	}

	// 1 June 2025 was a Sunday
	month = BuildMonth(nil, Cursor{2025, time.June})
	if month.Leading != 0 {
		t.Errorf("Leading = %d, want 0", month.Leading)
	}
}

func TestBuildMonthBucketsTasksByDay(t *testing.T) {
	tasks := []taskapi.Task{
		taskAt(t, 1, "first", "acme", time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local), taskapi.PriorityLow, taskapi.StatusInProgress),
		taskAt(t, 2, "second", "acme", time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local), taskapi.PriorityLow, taskapi.StatusInProgress),
		taskAt(t, 3, "other month", "acme", time.Date(2025, 4, 14, 10, 0, 0, 0, time.Local), taskapi.PriorityLow, taskapi.StatusInProgress),
	}

	month := BuildMonth(tasks, Cursor{2025, time.March})

	for _, day := range month.Days {
		switch day.Num {
		case 14:
			if len(day.Tasks) != 2 {
				t.Errorf("day 14 has %d tasks, want 2", len(day.Tasks))
			}
		default:
			if len(day.Tasks) != 0 {
				t.Errorf("day %d has %d tasks, want 0", day.Num, len(day.Tasks))
			}
		}
	}
}

func TestCursorWrapsYearBoundaries(t *testing.T) {
	dec := Cursor{2024, time.December}
	jan := dec.Next()
	if jan != (Cursor{2025, time.January}) {
		t.Errorf("Next() from December 2024 = %+v, want January 2025", jan)
	}
	if back := jan.Prev(); back != dec {
		t.Errorf("Prev() from January 2025 = %+v, want December 2024", back)
	}
}

func TestCursorPlainSteps(t *testing.T) {
	c := Cursor{2025, time.June}
	if next := c.Next(); next != (Cursor{2025, time.July}) {
		t.Errorf("Next() = %+v, want July 2025", next)
	}
	if prev := c.Prev(); prev != (Cursor{2025, time.May}) {
		t.Errorf("Prev() = %+v, want May 2025", prev)
	}
}

func TestCursorFor(t *testing.T) {
	c := CursorFor(time.Date(2025, 8, 31, 23, 0, 0, 0, time.Local))
	if c != (Cursor{2025, time.August}) {
		t.Errorf("CursorFor = %+v, want August 2025", c)
	}
}
