package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dayboard/internal/config"
	apperrors "dayboard/internal/errors"
	"dayboard/internal/handler"
	"dayboard/internal/metrics"
)

// TokenVerifier resolves a bearer token to the id of an existing user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth   *handler.AuthHandler
	Todo   *handler.TodoHandler
	Goal   *handler.GoalHandler
	Note   *handler.NoteHandler
	Habit  *handler.HabitHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

// Options carries the cross-cutting dependencies of the router.
type Options struct {
	Logger         *slog.Logger
	Verifier       TokenVerifier
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, opts Options, h Handlers) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}

	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Validator = handler.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(RequestLogger(logger))
	e.Use(metrics.Middleware(rec))

	e.GET("/health", h.Health.Health)
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	// Secured routes (require a bearer token for an existing user)
	secured := e.Group("", BearerAuth(opts.Verifier))

	secured.GET("/auth/me", h.Auth.Me)
	secured.PATCH("/auth/profile", h.Auth.UpdateProfile)

	secured.GET("/todos", h.Todo.ListTodos)
	secured.POST("/todos", h.Todo.CreateTodo)
	secured.PATCH("/todos/:id", h.Todo.UpdateTodo)
	secured.DELETE("/todos/:id", h.Todo.DeleteTodo)

	secured.GET("/goals", h.Goal.ListGoals)
	secured.POST("/goals", h.Goal.CreateGoal)
	secured.PATCH("/goals/:id", h.Goal.UpdateGoal)
	secured.DELETE("/goals/:id", h.Goal.DeleteGoal)

	secured.GET("/notes", h.Note.ListNotes)
	secured.POST("/notes", h.Note.CreateNote)
	secured.DELETE("/notes/:id", h.Note.DeleteNote)

	secured.GET("/habits", h.Habit.ListHabits)
	secured.POST("/habits", h.Habit.CreateHabit)
	secured.PATCH("/habits/:id", h.Habit.UpdateHabit)
	secured.DELETE("/habits/:id", h.Habit.DeleteHabit)

	secured.GET("/stats", h.Stats.GetStats)
}

// BearerAuth rejects requests without a valid "Bearer <token>" header and
// stores the verified user id under handler.UserContextKey.
func BearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  handler.UserContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return verifier.Verify(c.Request().Context(), auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// A store outage while checking the user is not the caller's fault.
			if !apperrors.Is(err, apperrors.KindInternal) {
				err = apperrors.ErrUnauthorized
			}
			httpErr := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
		},
	})
}

// RequestLogger logs one line per request at a level matching the status class.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.RoutePath),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("latency_ms", v.Latency.Milliseconds()),
				slog.String("request_id", v.RequestID),
			}
			if id, ok := c.Get(handler.UserContextKey).(uuid.UUID); ok {
				attrs = append(attrs, slog.String("user_id", id.String()))
			}

			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
				if v.Error != nil {
					attrs = append(attrs, slog.String("error", v.Error.Error()))
				}
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
