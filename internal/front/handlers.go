package front

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anikashraful/taskflow/internal/dashboard"
	"github.com/anikashraful/taskflow/internal/taskapi"
)

func reqLog(c *gin.Context, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{requestID(c)}, args...)...)
}

// currentUser fetches the signed-in user for the page being rendered. Any
// failure here invalidates the session: the cookies are cleared and the
// user is sent back to the sign-in page.
func currentUser(c *gin.Context) (taskapi.User, bool) {
	user, err := api.FetchUser(c.Request.Context(), sessionToken(c))
	if err != nil {
		reqLog(c, "failed to fetch user: %v", err)
		signOut(c)

		return taskapi.User{}, false
	}

	return user, true
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (r loginRequest) validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("please enter both email and password")
	}

	return nil
}

type signupRequest struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (r signupRequest) validate() error {
	if r.FullName == "" || r.Email == "" || r.Password == "" {
		return fmt.Errorf("please fill in all fields")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	return nil
}

type taskForm struct {
	Name      string   `form:"name"`
	Project   string   `form:"project"`
	DueDate   string   `form:"dueDate"`
	Priority  string   `form:"priority"`
	Assignees []string `form:"assignees"`
}

func (f taskForm) validate() error {
	if f.Name == "" || f.Project == "" || f.DueDate == "" || f.Priority == "" {
		return fmt.Errorf("please fill in all required fields")
	}
	if !taskapi.ValidPriority(f.Priority) {
		return fmt.Errorf("unknown priority %q", f.Priority)
	}

	return nil
}

func (f taskForm) payload(status string) taskapi.TaskPayload {
	return taskapi.TaskPayload{
		Name:      strings.TrimSpace(f.Name),
		Project:   strings.TrimSpace(f.Project),
		DueDate:   f.DueDate,
		Priority:  f.Priority,
		Assignees: f.Assignees,
		Status:    status,
	}
}

type teamForm struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
}

func (f teamForm) validate() error {
	if f.FullName == "" || f.Email == "" {
		return fmt.Errorf("please enter both name and email")
	}
	if !strings.Contains(f.Email, "@") || !strings.Contains(f.Email, ".") {
		return fmt.Errorf("please enter a valid email address")
	}

	return nil
}

type profileForm struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Bio      string `form:"bio"`
}

func (f profileForm) validate() error {
	if f.FullName == "" || f.Email == "" {
		return fmt.Errorf("full name and email are required")
	}

	return nil
}

func handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", AuthVM{
		Title:  "Sign In",
		Notice: c.Query("notice"),
	})
}

func handleLogin(c *gin.Context) {
	var r loginRequest
	if err := c.ShouldBind(&r); err != nil {
		reqLog(c, "failed to bind login request: %v", err)
		c.HTML(http.StatusBadRequest, "login.html", AuthVM{Title: "Sign In", Error: "bad data"})

		return
	}
	r.Email = strings.TrimSpace(r.Email)

	if err := r.validate(); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", AuthVM{Title: "Sign In", Error: err.Error(), Email: r.Email})

		return
	}

	creds, err := api.SignIn(c.Request.Context(), r.Email, r.Password)
	if err != nil {
		reqLog(c, "sign-in failed: %v", err)
		c.HTML(http.StatusUnauthorized, "login.html", AuthVM{
			Title: "Sign In",
			Error: taskapi.UserMessage(err, "Sign-in failed: Network error"),
			Email: r.Email,
		})

		return
	}

	setSession(c, creds)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func handleSignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", AuthVM{Title: "Sign Up"})
}

func handleSignup(c *gin.Context) {
	var r signupRequest
	if err := c.ShouldBind(&r); err != nil {
		reqLog(c, "failed to bind signup request: %v", err)
		c.HTML(http.StatusBadRequest, "signup.html", AuthVM{Title: "Sign Up", Error: "bad data"})

		return
	}
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)

	if err := r.validate(); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", AuthVM{
			Title: "Sign Up", Error: err.Error(), Email: r.Email, Name: r.FullName,
		})

		return
	}

	if err := api.SignUp(c.Request.Context(), r.FullName, r.Email, r.Password); err != nil {
		reqLog(c, "sign-up failed: %v", err)
		c.HTML(http.StatusBadRequest, "signup.html", AuthVM{
			Title: "Sign Up",
			Error: taskapi.UserMessage(err, "Signup failed: Network error"),
			Email: r.Email, Name: r.FullName,
		})

		return
	}

	c.Redirect(http.StatusSeeOther, "/login?"+url.Values{
		"notice": {"Sign-up successful! Please sign in."},
	}.Encode())
}

func handleLogout(c *gin.Context) {
	clearSession(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func handleDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))
	query := strings.TrimSpace(c.Query("q"))

	vm := buildDashboardVM(user, dashboard.Search(tasks, query), time.Now(), query)
	// the greeting names the profile cached at sign-in, not the live fetch
	if cached, ok := cachedUser(c); ok {
		vm.Greeting = greeting(cached.FullName, time.Now())
	}
	c.HTML(http.StatusOK, "dashboard.html", vm)
}

func handleTasksPage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))
	query := strings.TrimSpace(c.Query("q"))

	vm := buildTasksVM(user, dashboard.Search(tasks, query), query)
	vm.Error = c.Query("err")
	vm.Notice = c.Query("notice")
	c.HTML(http.StatusOK, "tasks.html", vm)
}

func redirectTasks(c *gin.Context, notice, errMsg string) {
	v := url.Values{}
	if notice != "" {
		v.Set("notice", notice)
	}
	if errMsg != "" {
		v.Set("err", errMsg)
	}
	target := "/tasks"
	if q := v.Encode(); q != "" {
		target += "?" + q
	}
	c.Redirect(http.StatusSeeOther, target)
}

func handleTaskNewPage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	team := api.FetchTeam(c.Request.Context(), sessionToken(c))
	c.HTML(http.StatusOK, "task_form.html", buildTaskFormVM(user, team, taskForm{}, false, 0))
}

func handleTaskCreate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var f taskForm
	if err := c.ShouldBind(&f); err != nil {
		reqLog(c, "failed to bind task form: %v", err)
		redirectTasks(c, "", "bad data")

		return
	}

	team := api.FetchTeam(c.Request.Context(), sessionToken(c))

	if err := f.validate(); err != nil {
		vm := buildTaskFormVM(user, team, f, false, 0)
		vm.Error = err.Error()
		c.HTML(http.StatusBadRequest, "task_form.html", vm)

		return
	}

	// new tasks always start in progress
	err := api.CreateTask(c.Request.Context(), sessionToken(c), f.payload(taskapi.StatusInProgress))
	if err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		reqLog(c, "failed to create task: %v", err)
		vm := buildTaskFormVM(user, team, f, false, 0)
		vm.Error = taskapi.UserMessage(err, "Failed to add task: Network error")
		c.HTML(http.StatusBadGateway, "task_form.html", vm)

		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func taskIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("task id required")
	}

	return id, nil
}

func handleTaskEditPage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		redirectTasks(c, "", err.Error())

		return
	}

	task, err := api.FindTask(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		redirectTasks(c, "", "Task not found")

		return
	}

	team := api.FetchTeam(c.Request.Context(), sessionToken(c))
	f := taskForm{
		Name:    task.Name,
		Project: task.Project,
		// date-only value for the date input
		DueDate:   task.DueDate.Format("2006-01-02"),
		Priority:  task.Priority,
		Assignees: task.Assignees,
	}
	c.HTML(http.StatusOK, "task_form.html", buildTaskFormVM(user, team, f, true, id))
}

func handleTaskUpdate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		redirectTasks(c, "", err.Error())

		return
	}

	var f taskForm
	if err := c.ShouldBind(&f); err != nil {
		reqLog(c, "failed to bind task form: %v", err)
		redirectTasks(c, "", "bad data")

		return
	}

	if err := f.validate(); err != nil {
		team := api.FetchTeam(c.Request.Context(), sessionToken(c))
		vm := buildTaskFormVM(user, team, f, true, id)
		vm.Error = err.Error()
		c.HTML(http.StatusBadRequest, "task_form.html", vm)

		return
	}

	// editing a task through the form puts it back in progress
	err = api.UpdateTask(c.Request.Context(), sessionToken(c), id, f.payload(taskapi.StatusInProgress))
	if err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		reqLog(c, "failed to update task %d: %v", id, err)
		redirectTasks(c, "", taskapi.UserMessage(err, "Failed to update task"))

		return
	}

	redirectTasks(c, "Task updated successfully", "")
}

func handleTaskStatus(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		redirectTasks(c, "", err.Error())

		return
	}

	status := c.PostForm("status")
	if !taskapi.ValidStatus(status) {
		redirectTasks(c, "", "invalid status")

		return
	}

	// the server only accepts full task payloads, so refetch and resend
	// everything with the new status
	task, err := api.FindTask(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		redirectTasks(c, "", "Task not found")

		return
	}

	payload := taskapi.TaskPayload{
		Name:      task.Name,
		Project:   task.Project,
		DueDate:   task.DueDate.String(),
		Priority:  task.Priority,
		Assignees: task.Assignees,
		Status:    status,
	}
	if err := api.UpdateTask(c.Request.Context(), sessionToken(c), id, payload); err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		reqLog(c, "failed to change status of task %d: %v", id, err)
		redirectTasks(c, "", taskapi.UserMessage(err, "Update failed"))

		return
	}

	redirectTasks(c, "", "")
}

func handleTaskDelete(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	id, err := taskIDParam(c)
	if err != nil {
		redirectTasks(c, "", err.Error())

		return
	}

	if err := api.DeleteTask(c.Request.Context(), sessionToken(c), id); err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		if errors.Is(err, taskapi.ErrNotFound) {
			redirectTasks(c, "", "Task not found")

			return
		}
		reqLog(c, "failed to delete task %d: %v", id, err)
		redirectTasks(c, "", taskapi.UserMessage(err, "Failed to delete task"))

		return
	}

	redirectTasks(c, "Task deleted successfully", "")
}

func handleExport(c *gin.Context) {
	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))

	var buf bytes.Buffer
	if err := dashboard.WriteCSV(&buf, tasks); err != nil {
		reqLog(c, "failed to export tasks: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "export failed"})

		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", dashboard.ExportFilename(time.Now())))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func handleCalendar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cursor := dashboard.CursorFor(time.Now())
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		if month, err := strconv.Atoi(c.Query("month")); err == nil && month >= 1 && month <= 12 {
			cursor = dashboard.Cursor{Year: year, Month: time.Month(month)}
		}
	}

	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))
	c.HTML(http.StatusOK, "calendar.html", buildCalendarVM(user, tasks, cursor))
}

func handleTeamPage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	team := api.FetchTeam(c.Request.Context(), sessionToken(c))
	vm := buildTeamVM(user, team)
	vm.Notice = c.Query("notice")
	c.HTML(http.StatusOK, "team.html", vm)
}

func handleTeamCreate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var f teamForm
	if err := c.ShouldBind(&f); err != nil {
		reqLog(c, "failed to bind team form: %v", err)
		c.Redirect(http.StatusSeeOther, "/team")

		return
	}
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)

	renderErr := func(status int, msg string) {
		team := api.FetchTeam(c.Request.Context(), sessionToken(c))
		vm := buildTeamVM(user, team)
		vm.Error = msg
		vm.Form = f
		c.HTML(status, "team.html", vm)
	}

	if err := f.validate(); err != nil {
		renderErr(http.StatusBadRequest, err.Error())

		return
	}

	err := api.CreateTeamMember(c.Request.Context(), sessionToken(c), f.FullName, f.Email)
	if err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		reqLog(c, "failed to add team member: %v", err)
		renderErr(http.StatusBadGateway, taskapi.UserMessage(err, "Failed to add team member: Network error"))

		return
	}

	c.Redirect(http.StatusSeeOther, "/team?"+url.Values{
		"notice": {"Team member added successfully"},
	}.Encode())
}

func handleProfilePage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))
	c.HTML(http.StatusOK, "profile.html", buildProfileVM(user, tasks, time.Now()))
}

func handleProfileUpdate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var f profileForm
	if err := c.ShouldBind(&f); err != nil {
		reqLog(c, "failed to bind profile form: %v", err)
		c.Redirect(http.StatusSeeOther, "/profile")

		return
	}
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Bio = strings.TrimSpace(f.Bio)

	tasks := api.FetchTasks(c.Request.Context(), sessionToken(c))

	if err := f.validate(); err != nil {
		vm := buildProfileVM(user, tasks, time.Now())
		vm.Error = err.Error()
		vm.Form = f
		c.HTML(http.StatusBadRequest, "profile.html", vm)

		return
	}

	updated, err := api.UpdateUser(c.Request.Context(), sessionToken(c), taskapi.UserUpdate{
		FullName: f.FullName,
		Email:    f.Email,
		Bio:      f.Bio,
	})
	if err != nil {
		if errors.Is(err, taskapi.ErrUnauthenticated) {
			signOut(c)

			return
		}
		reqLog(c, "failed to update profile: %v", err)
		vm := buildProfileVM(user, tasks, time.Now())
		vm.Error = taskapi.UserMessage(err, "Profile update failed: Network error")
		vm.Form = f
		c.HTML(http.StatusBadGateway, "profile.html", vm)

		return
	}

	saveUser(c, updated)
	vm := buildProfileVM(updated, tasks, time.Now())
	vm.Notice = "Profile updated successfully"
	c.HTML(http.StatusOK, "profile.html", vm)
}
