package adapthttp

import (
	"net/http"

	"fitfusion/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Services groups the application services the server routes to.
type Services struct {
	Auth      *app.AuthService
	Workouts  *app.WorkoutService
	Meals     *app.MealService
	Nutrition *app.NutritionService
	Goals     *app.GoalService
	Scanner   *app.ScannerService
	Coach     *app.CoachService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth      *app.AuthService
	workouts  *app.WorkoutService
	meals     *app.MealService
	nutrition *app.NutritionService
	goals     *app.GoalService
	scanner   *app.ScannerService
	coach     *app.CoachService

	oidcConfig OIDCConfig
	corsOrigin string

	// disableAuth skips token validation and injects a fixed user (tests).
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(svcs Services, oidcConfig OIDCConfig, corsOrigin string) *Server {
	return &Server{
		auth:       svcs.Auth,
		workouts:   svcs.Workouts,
		meals:      svcs.Meals,
		nutrition:  svcs.Nutrition,
		goals:      svcs.Goals,
		scanner:    svcs.Scanner,
		coach:      svcs.Coach,
		oidcConfig: oidcConfig,
		corsOrigin: corsOrigin,
	}
}

// WithoutAuth disables token validation; requests run as a fixed user (tests).
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/me", s.handleMe)
	api.HandleFunc("/auth/config", s.handleAuthConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.HandleFunc("/workouts", s.handleWorkouts)
	api.HandleFunc("/workouts/", s.handleWorkoutByID)
	api.HandleFunc("/workouts/stats/summary", s.handleWorkoutStats)

	api.HandleFunc("/meals", s.handleMeals)
	api.HandleFunc("/meals/", s.handleMealByID)

	api.HandleFunc("/nutrition", s.handleNutrition)
	api.HandleFunc("/nutrition/daily-summary", s.handleNutritionDailySummary)

	api.HandleFunc("/goals", s.handleGoals)
	api.HandleFunc("/goals/", s.handleGoalByID)

	api.HandleFunc("/scanner/logs", s.handleScannerLogs)

	api.HandleFunc("/coach/chat", s.handleCoachChat)
	api.HandleFunc("/coach/history", s.handleCoachHistory)

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", s.authMiddleware(api)))
	root.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return loggingMiddleware(c.Handler(root))
}
