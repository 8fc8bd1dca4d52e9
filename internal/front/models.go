package front

import (
	"strconv"
	"strings"
	"time"

	"github.com/anikashraful/taskflow/internal/dashboard"
	"github.com/anikashraful/taskflow/internal/taskapi"
	"github.com/anikashraful/taskflow/internal/utils"
)

// Initials are the first letter of each whitespace-separated token of a
// display name, upper-cased. An empty name yields empty initials.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(string([]rune(word)[:1]))
	}
	return strings.ToUpper(b.String())
}

// statusClasses and priorityClasses are the fixed lookups from enum values
// to CSS classes. Unknown values (legacy statuses the server may still
// hold) fall back to their lower-cased form.
var statusClasses = map[string]string{
	taskapi.StatusCompleted:  "completed",
	taskapi.StatusInProgress: "",
}

var priorityClasses = map[string]string{
	taskapi.PriorityLow:    "low",
	taskapi.PriorityMedium: "medium",
	taskapi.PriorityHigh:   "high",
}

func statusClass(status string) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return strings.ToLower(status)
}

func priorityClass(priority string) string {
	if class, ok := priorityClasses[priority]; ok {
		return class
	}
	return strings.ToLower(priority)
}

type UserVM struct {
	FullName string
	Email    string
	Bio      string
	Initials string
}

func buildUserVM(u taskapi.User) UserVM {
	name := u.FullName
	if name == "" {
		name = "User"
	}
	return UserVM{
		FullName: name,
		Email:    u.Email,
		Bio:      u.Bio,
		Initials: Initials(u.FullName),
	}
}

type MemberVM struct {
	FullName string
	Email    string
	Initials string
}

func buildMemberVMs(team []taskapi.TeamMember) []MemberVM {
	return utils.Map(team, func(m taskapi.TeamMember) MemberVM {
		return MemberVM{
			FullName: m.FullName,
			Email:    m.Email,
			Initials: Initials(m.FullName),
		}
	})
}

type TaskRowVM struct {
	ID               int64
	Name             string
	Project          string
	Due              time.Time
	DueLabel         string
	Priority         string
	PriorityClass    string
	Status           string
	StatusClass      string
	Assignees        []string
	AssigneeInitials []string
	Completed        bool
}

func buildTaskRow(t taskapi.Task) TaskRowVM {
	return TaskRowVM{
		ID:               t.ID,
		Name:             t.Name,
		Project:          t.Project,
		Due:              t.DueDate.Time,
		DueLabel:         t.DueDate.Format("Jan 2, 2006 3:04 PM"),
		Priority:         t.Priority,
		PriorityClass:    priorityClass(t.Priority),
		Status:           t.Status,
		StatusClass:      statusClass(t.Status),
		Assignees:        t.Assignees,
		AssigneeInitials: utils.Map(t.Assignees, Initials),
		Completed:        t.Status == taskapi.StatusCompleted,
	}
}

func buildTaskRows(tasks []taskapi.Task) []TaskRowVM {
	return utils.Map(tasks, buildTaskRow)
}

type StatVM struct {
	Count int
	Trend int
}

type BucketVM struct {
	Count   int
	Percent int
}

type DashboardVM struct {
	Title    string
	Active   string
	User     UserVM
	Greeting string
	Query    string
	Error    string
	Notice   string

	Total      StatVM
	Completed  StatVM
	InProgress StatVM
	Overdue    StatVM

	ProgressWidth string

	CompletedBucket      BucketVM
	InProgressBucket     BucketVM
	OverdueBucket        BucketVM
	HighPriorityBucket   BucketVM
	MediumPriorityBucket BucketVM
	LowPriorityBucket    BucketVM

	Agenda []TaskRowVM
}

// buildDashboardVM projects the aggregated statistics and today's agenda
// into the dashboard page. Every derived value is recomputed from the task
// set handed in; nothing carries over between renders.
func buildDashboardVM(user taskapi.User, tasks []taskapi.Task, now time.Time, query string) DashboardVM {
	stats := dashboard.Compute(tasks, now)

	return DashboardVM{
		Title:    "Dashboard",
		Active:   "dashboard",
		User:     buildUserVM(user),
		Greeting: greeting(user.FullName, now),
		Query:    query,

		Total:      StatVM{Count: stats.Total, Trend: dashboard.Trend(stats.Total)},
		Completed:  StatVM{Count: stats.Completed, Trend: dashboard.Trend(stats.Completed)},
		InProgress: StatVM{Count: stats.InProgress, Trend: dashboard.Trend(stats.InProgress)},
		Overdue:    StatVM{Count: stats.Overdue, Trend: dashboard.Trend(stats.Overdue)},

		ProgressWidth: progressWidth(stats),

		CompletedBucket:      BucketVM{stats.Completed, dashboard.Percent(stats.Completed, stats.Total)},
		InProgressBucket:     BucketVM{stats.InProgress, dashboard.Percent(stats.InProgress, stats.Total)},
		OverdueBucket:        BucketVM{stats.Overdue, dashboard.Percent(stats.Overdue, stats.Total)},
		HighPriorityBucket:   BucketVM{stats.HighPriority, dashboard.Percent(stats.HighPriority, stats.Total)},
		MediumPriorityBucket: BucketVM{stats.MediumPriority, dashboard.Percent(stats.MediumPriority, stats.Total)},
		LowPriorityBucket:    BucketVM{stats.LowPriority, dashboard.Percent(stats.LowPriority, stats.Total)},

		Agenda: buildTaskRows(dashboard.ForToday(tasks, now)),
	}
}

// progressWidth is the completion ratio as a CSS width, "0%" for an empty
// set.
func progressWidth(stats dashboard.Stats) string {
	if stats.Total == 0 {
		return "0%"
	}
	pct := float64(stats.Completed) / float64(stats.Total) * 100
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

func greeting(name string, now time.Time) string {
	if name == "" {
		name = "User"
	}
	timeOfDay := "evening"
	switch hour := now.Hour(); {
	case hour < 12:
		timeOfDay = "morning"
	case hour < 18:
		timeOfDay = "afternoon"
	}
	return "Good " + timeOfDay + ", " + name + "!"
}

type TasksVM struct {
	Title  string
	Active string
	User   UserVM
	Query  string
	Error  string
	Notice string

	Rows     []TaskRowVM
	Statuses []string
}

func buildTasksVM(user taskapi.User, tasks []taskapi.Task, query string) TasksVM {
	return TasksVM{
		Title:    "Tasks",
		Active:   "tasks",
		User:     buildUserVM(user),
		Query:    query,
		Rows:     buildTaskRows(tasks),
		Statuses: []string{taskapi.StatusInProgress, taskapi.StatusCompleted},
	}
}

type TaskFormVM struct {
	Title  string
	Active string
	User   UserVM
	Error  string

	Editing bool
	TaskID  int64
	Form    taskForm
	Team    []MemberVM

	Priorities []string
}

func buildTaskFormVM(user taskapi.User, team []taskapi.TeamMember, form taskForm, editing bool, taskID int64) TaskFormVM {
	title := "Add Task"
	if editing {
		title = "Edit Task"
	}
	return TaskFormVM{
		Title:      title,
		Active:     "tasks",
		User:       buildUserVM(user),
		Editing:    editing,
		TaskID:     taskID,
		Form:       form,
		Team:       buildMemberVMs(team),
		Priorities: []string{taskapi.PriorityLow, taskapi.PriorityMedium, taskapi.PriorityHigh},
	}
}

type DayCellVM struct {
	Num      int
	HasTasks bool
	Tooltip  string
}

type CalendarVM struct {
	Title  string
	Active string
	User   UserVM

	MonthLabel string
	Prev       dashboard.Cursor
	Next       dashboard.Cursor

	Weekdays []string
	// Blanks pads the grid up to the weekday of day 1.
	Blanks []struct{}
	Days   []DayCellVM
}

func buildCalendarVM(user taskapi.User, tasks []taskapi.Task, cursor dashboard.Cursor) CalendarVM {
	month := dashboard.BuildMonth(tasks, cursor)

	days := utils.Map(month.Days, func(d dashboard.Day) DayCellVM {
		names := utils.Map(d.Tasks, func(t taskapi.Task) string { return t.Name })
		return DayCellVM{
			Num:      d.Num,
			HasTasks: len(d.Tasks) > 0,
			Tooltip:  strings.Join(names, ", "),
		}
	})

	return CalendarVM{
		Title:      "Calendar",
		Active:     "calendar",
		User:       buildUserVM(user),
		MonthLabel: cursor.Month.String() + " " + strconv.Itoa(cursor.Year),
		Prev:       cursor.Prev(),
		Next:       cursor.Next(),
		Weekdays:   []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Blanks:     make([]struct{}, month.Leading),
		Days:       days,
	}
}

type TeamVM struct {
	Title  string
	Active string
	User   UserVM
	Error  string
	Notice string

	Members []MemberVM
	Form    teamForm
}

func buildTeamVM(user taskapi.User, team []taskapi.TeamMember) TeamVM {
	return TeamVM{
		Title:   "Team",
		Active:  "team",
		User:    buildUserVM(user),
		Members: buildMemberVMs(team),
	}
}

type ProfileVM struct {
	Title  string
	Active string
	User   UserVM
	Error  string
	Notice string

	Stats dashboard.Stats
	Form  profileForm
}

func buildProfileVM(user taskapi.User, tasks []taskapi.Task, now time.Time) ProfileVM {
	return ProfileVM{
		Title:  "Profile",
		Active: "profile",
		User:   buildUserVM(user),
		Stats:  dashboard.Compute(tasks, now),
		Form: profileForm{
			FullName: user.FullName,
			Email:    user.Email,
			Bio:      user.Bio,
		},
	}
}

// AuthVM backs the login and signup pages.
type AuthVM struct {
	Title  string
	Error  string
	Notice string
	Email  string
	Name   string
}
