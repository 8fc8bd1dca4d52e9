package front

import (
	"testing"
	"time"

	"github.com/anikashraful/taskflow/internal/dashboard"
	"github.com/anikashraful/taskflow/internal/taskapi"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Jane Q Doe":        "JQD",
		"John Doe":          "JD",
		"alice smith":       "AS",
		"Cher":              "C",
		"":                  "",
		"  spaced   name  ": "SN",
	}
	for name, want := range cases {
		if got := Initials(name); got != want {
			t.Errorf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestStatusAndPriorityClassLookups(t *testing.T) {
	if got := statusClass(taskapi.StatusCompleted); got != "completed" {
		t.Errorf("statusClass(Completed) = %q", got)
	}
	if got := statusClass(taskapi.StatusInProgress); got != "" {
		t.Errorf("statusClass(In Progress) = %q, want empty", got)
	}
	if got := statusClass("Blocked"); got != "blocked" {
		t.Errorf("statusClass fallback = %q", got)
	}

	for priority, want := range map[string]string{
		taskapi.PriorityHigh:   "high",
		taskapi.PriorityMedium: "medium",
		taskapi.PriorityLow:    "low",
	} {
		if got := priorityClass(priority); got != want {
			t.Errorf("priorityClass(%q) = %q, want %q", priority, got, want)
		}
	}
}

func TestProgressWidth(t *testing.T) {
	if got := progressWidth(dashboard.Stats{}); got != "0%" {
		t.Errorf("empty set width = %q, want 0%%", got)
	}
	if got := progressWidth(dashboard.Stats{Total: 2, Completed: 1}); got != "50%" {
		t.Errorf("width = %q, want 50%%", got)
	}
	if got := progressWidth(dashboard.Stats{Total: 4, Completed: 3}); got != "75%" {
		t.Errorf("width = %q, want 75%%", got)
	}
}

func TestGreetingTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	afternoon := time.Date(2025, 3, 14, 14, 0, 0, 0, time.Local)
	evening := time.Date(2025, 3, 14, 20, 0, 0, 0, time.Local)

	if got := greeting("Jane", morning); got != "Good morning, Jane!" {
		t.Errorf("greeting = %q", got)
	}
	if got := greeting("Jane", afternoon); got != "Good afternoon, Jane!" {
		t.Errorf("greeting = %q", got)
	}
	if got := greeting("", evening); got != "Good evening, User!" {
		t.Errorf("greeting = %q", got)
	}
}

func TestBuildDashboardVMWiresAggregates(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	tasks := []taskapi.Task{
		{
			ID: 1, Name: "due today", Project: "acme",
			DueDate:  taskapi.NewDateTime(time.Date(2025, 3, 14, 16, 0, 0, 0, time.Local)),
			Priority: taskapi.PriorityHigh, Assignees: []string{"John Doe"},
			Status: taskapi.StatusInProgress,
		},
		{
			ID: 2, Name: "done", Project: "acme",
			DueDate:  taskapi.NewDateTime(time.Date(2025, 3, 20, 16, 0, 0, 0, time.Local)),
			Priority: taskapi.PriorityLow, Assignees: []string{"Alice Smith"},
			Status: taskapi.StatusCompleted,
		},
	}

	vm := buildDashboardVM(taskapi.User{FullName: "Jane Doe"}, tasks, now, "")

	if vm.Total.Count != 2 || vm.Completed.Count != 1 || vm.InProgress.Count != 1 {
		t.Errorf("counters = %d/%d/%d", vm.Total.Count, vm.Completed.Count, vm.InProgress.Count)
	}
	if vm.Total.Trend != dashboard.Trend(2) {
		t.Errorf("Trend = %d", vm.Total.Trend)
	}
	if vm.CompletedBucket.Percent != 50 {
		t.Errorf("CompletedBucket.Percent = %d, want 50", vm.CompletedBucket.Percent)
	}
	if vm.ProgressWidth != "50%" {
		t.Errorf("ProgressWidth = %q", vm.ProgressWidth)
	}
	if len(vm.Agenda) != 1 || vm.Agenda[0].Name != "due today" {
		t.Errorf("Agenda = %+v", vm.Agenda)
	}
	if vm.Agenda[0].AssigneeInitials[0] != "JD" {
		t.Errorf("AssigneeInitials = %v", vm.Agenda[0].AssigneeInitials)
	}
}

func TestBuildCalendarVMTooltipAndBlanks(t *testing.T) {
	cursor := dashboard.Cursor{Year: 2024, Month: time.February}
	tasks := []taskapi.Task{
		{ID: 1, Name: "one", DueDate: taskapi.NewDateTime(time.Date(2024, 2, 14, 10, 0, 0, 0, time.Local)), Status: taskapi.StatusInProgress},
		{ID: 2, Name: "two", DueDate: taskapi.NewDateTime(time.Date(2024, 2, 14, 12, 0, 0, 0, time.Local)), Status: taskapi.StatusInProgress},
	}

	vm := buildCalendarVM(taskapi.User{FullName: "Jane"}, tasks, cursor)

	if vm.MonthLabel != "February 2024" {
		t.Errorf("MonthLabel = %q", vm.MonthLabel)
	}
	if len(vm.Blanks) != 4 {
		t.Errorf("Blanks = %d, want 4", len(vm.Blanks))
	}
	if len(vm.Days) != 29 {
		t.Errorf("Days = %d, want 29", len(vm.Days))
	}

	day := vm.Days[13]
	if !day.HasTasks || day.Tooltip != "one, two" {
		t.Errorf("day 14 = %+v", day)
	}
	if vm.Prev != (dashboard.Cursor{Year: 2024, Month: time.January}) {
		t.Errorf("Prev = %+v", vm.Prev)
	}
}
