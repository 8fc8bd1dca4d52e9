// Package front is the server-rendered face of the task manager. It holds
// the user's session, talks to the remote task API through
// internal/taskapi, reduces the fetched entities with internal/dashboard
// and projects the results into HTML pages.
package front

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anikashraful/taskflow/internal/taskapi"
	"github.com/anikashraful/taskflow/internal/utils"
)

var (
	config Config
	engine *gin.Engine
	api    *taskapi.Client
)

func setCors() {
	corsconfig := cors.DefaultConfig()
	corsconfig.AllowOrigins = config.AllowedOrigins
	corsconfig.AllowMethods = config.AllowedMethods
	corsconfig.AllowHeaders = config.AllowedHeaders
	engine.Use(cors.New(corsconfig))
}

func setTemplateEngine() {
	funcMap := template.FuncMap{
		"mul": func(a, b any) float64 {
			return utils.ToFloat64(a) * utils.ToFloat64(b)
		},
		"div": func(a, b any) float64 {
			if utils.ToFloat64(b) == 0 {
				return 0
			}

			return utils.ToFloat64(a) / utils.ToFloat64(b)
		},
		"reltime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return humanize.Time(t)
		},
		"contains": func(s []string, v string) bool {
			return utils.Contains(s, v)
		},
	}
	engine.SetHTMLTemplate(template.Must(template.New("").Funcs(funcMap).ParseGlob(config.TemplatesPath + "/*.html")))
}

// withRequestID tags every request with an id that shows up both in the
// response headers and in the error logs, so user reports can be matched
// to log lines.
func withRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("reqid", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString("reqid")
}

func setRoutes() {
	engine.Static("/static", config.StaticsPath)

	root := engine.Group("/")
	{
		root.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "alive"})
		})

		root.GET("/", handleLoginPage)
		root.GET("/login", handleLoginPage)
		root.POST("/login", handleLogin)
		root.GET("/signup", handleSignupPage)
		root.POST("/signup", handleSignup)
		root.GET("/logout", handleLogout)
	}

	authed := engine.Group("/")
	authed.Use(requireSession())
	{
		authed.GET("/dashboard", handleDashboard)

		authed.GET("/tasks", handleTasksPage)
		authed.GET("/tasks/new", handleTaskNewPage)
		authed.POST("/tasks", handleTaskCreate)
		authed.GET("/tasks/export", handleExport)
		authed.GET("/tasks/:id/edit", handleTaskEditPage)
		authed.POST("/tasks/:id", handleTaskUpdate)
		authed.POST("/tasks/:id/status", handleTaskStatus)
		authed.POST("/tasks/:id/delete", handleTaskDelete)

		authed.GET("/calendar", handleCalendar)

		authed.GET("/team", handleTeamPage)
		authed.POST("/team", handleTeamCreate)

		authed.GET("/profile", handleProfilePage)
		authed.POST("/profile", handleProfileUpdate)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "bad path"})
	})
}

func InitAndServe(confPath string) {
	config = loadConfig(confPath)

	engine = gin.Default()
	setGinMode(config.ApiGinMode)

	api = taskapi.New(config.APIAddress)

	engine.Use(withRequestID())
	setCors()
	setTemplateEngine()
	setRoutes()

	// serve http
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           engine,
		ReadHeaderTimeout: time.Second * 5,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	<-ctx.Done()

	stop()
	log.Println("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func setGinMode(mode string) {
	switch strings.ToLower(mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "envgin":
		gin.SetMode(gin.EnvGinMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
