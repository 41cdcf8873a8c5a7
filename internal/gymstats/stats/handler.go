package stats

import (
	"context"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/sessions"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
	ExerciseProgress(ctx context.Context, userID, exerciseID, limit int) (*ExerciseProgress, error)
	MonthlySummary(ctx context.Context, userID, year, month int) (*MonthlySummary, error)
	Calendar(ctx context.Context, userID, year, month int) (map[string]int, error)
}

const defaultProgressLimit = 20

type CalendarResponse struct {
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	CalendarData map[string]int `json:"calendarData"`
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	sr := r.PathPrefix("/statistics").Subrouter()
	sr.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("stats-dashboard")
	sr.HandleFunc("/exercise-progress/{exerciseId:[0-9]+}", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("stats-exercise-progress")
	sr.HandleFunc("/monthly-summary/{year:[0-9]+}/{month:[0-9]+}", handler.HandleMonthlySummary).Methods("GET", "OPTIONS").Name("stats-monthly-summary")

	// calendar lives next to the sessions routes
	r.HandleFunc("/workout-sessions/calendar/{year:[0-9]+}/{month:[0-9]+}", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("sessions-calendar")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := handler.service.Dashboard(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "dashboard statistics")
		return
	}

	pkg.WriteJSON(w, dashboard, http.StatusOK)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exercise_progress")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	exerciseID, err := gymstats.PathInt(r, "exerciseId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := gymstats.QueryInt(r, "limit", defaultProgressLimit)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	progress, err := handler.service.ExerciseProgress(ctx, userID, exerciseID, limit)
	if err != nil {
		gymstats.WriteError(w, err, "exercise progress statistics")
		return
	}
	if progress.ProgressData == nil {
		progress.ProgressData = []sessions.ProgressRecord{}
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.monthly_summary")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	summary, err := handler.service.MonthlySummary(ctx, userID, year, month)
	if err != nil {
		gymstats.WriteError(w, err, "monthly summary")
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	calendar, err := handler.service.Calendar(ctx, userID, year, month)
	if err != nil {
		gymstats.WriteError(w, err, "calendar data")
		return
	}

	pkg.WriteJSON(w, CalendarResponse{
		Year:         year,
		Month:        month,
		CalendarData: calendar,
	}, http.StatusOK)
}

func yearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := gymstats.PathInt(r, "year")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	month, err := gymstats.PathInt(r, "month")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return year, month, true
}
