package sessions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, userID int, params StartParams) (*Session, error)
	Get(ctx context.Context, id, userID int) (*Session, error)
	List(ctx context.Context, userID, limit, offset int) ([]Session, int, error)
	Delete(ctx context.Context, id, userID int) error
	UpdateNotes(ctx context.Context, id, userID int, notes string) (*Session, error)
	End(ctx context.Context, id, userID int) (*Session, error)
	AddExercise(ctx context.Context, sessionID, userID, exerciseID, number int, observations string) (*SessionExercise, error)
	RemoveExercise(ctx context.Context, sessionID, userID, exerciseID int) error
	AddSet(ctx context.Context, sessionID, userID, exerciseID int, data SetData) (*Set, error)
	UpdateSet(ctx context.Context, setID, userID int, patch SetPatch) (*Set, error)
	DeleteSet(ctx context.Context, setID, userID int) error
	Progress(ctx context.Context, userID, exerciseID, limit int) ([]ProgressRecord, Best, error)
}

const (
	defaultListLimit     = 20
	maxListLimit         = 100
	defaultProgressLimit = 10
)

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type AddExerciseRequest struct {
	ExerciseID   int    `json:"exerciseId"`
	Number       int    `json:"number"`
	Observations string `json:"observations"`
}

type AddSetRequest struct {
	ExerciseID int `json:"exerciseId"`
	SetData
}

type ProgressResponse struct {
	ExerciseID int              `json:"exerciseId"`
	Progress   []ProgressRecord `json:"progress"`
	Best
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service        sessionsService
	metricsManager *metrics.Manager
}

func NewHandler(service sessionsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	sr := r.PathPrefix("/workout-sessions").Subrouter()
	sr.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	sr.HandleFunc("", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleUpdateNotes).Methods("PUT", "OPTIONS").Name("update-session")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-session")
	sr.HandleFunc("/{id:[0-9]+}/end", handler.HandleEnd).Methods("POST", "OPTIONS").Name("end-session")
	sr.HandleFunc("/{id:[0-9]+}/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-session-exercise")
	sr.HandleFunc("/{sessionId:[0-9]+}/exercises/{exerciseId:[0-9]+}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-session-exercise")
	sr.HandleFunc("/{id:[0-9]+}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	sr.HandleFunc("/sets/{setId:[0-9]+}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	sr.HandleFunc("/sets/{setId:[0-9]+}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
	sr.HandleFunc("/progress/{exerciseId:[0-9]+}", handler.HandleProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	limit, err := gymstats.QueryInt(r, "limit", defaultListLimit)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if limit == 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	offset, err := gymstats.QueryInt(r, "offset", 0)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.service.List(ctx, userID, limit, offset)
	if err != nil {
		gymstats.WriteError(w, err, "list sessions")
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	pkg.WriteJSON(w, ListResponse{
		Sessions: sessions,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	id, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		gymstats.WriteError(w, err, "get session")
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var params StartParams
	if r.ContentLength != 0 {
		if !gymstats.IsJSON(r) {
			http.Error(w, "invalid content type", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			log.Tracef("start session, unmarshal json params: %s", err)
			pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	session, err := handler.service.Start(ctx, userID, params)
	if err != nil {
		gymstats.WriteError(w, err, "start session")
		return
	}

	log.Debugf("user %d started session %d", userID, session.ID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.update")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	id, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateNotesRequest
	if !handler.decode(w, r, &req) {
		return
	}

	session, err := handler.service.UpdateNotes(ctx, id, userID, req.Notes)
	if err != nil {
		gymstats.WriteError(w, err, "update session notes")
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	id, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		gymstats.WriteError(w, err, "delete session")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.end")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	id, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.service.End(ctx, id, userID)
	if err != nil {
		gymstats.WriteError(w, err, "end session")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSessionsEnded.Inc()
		if session.TotalVolume != nil {
			handler.metricsManager.HistogramSessionVolume.Observe(float64(*session.TotalVolume))
		}
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.add_exercise")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	sessionID, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if !handler.decode(w, r, &req) {
		return
	}
	if req.ExerciseID <= 0 {
		pkg.WriteJSONError(w, "exerciseId is required", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddExercise(ctx, sessionID, userID, req.ExerciseID, req.Number, req.Observations)
	if err != nil {
		gymstats.WriteError(w, err, "add session exercise")
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.remove_exercise")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	sessionID, err := gymstats.PathInt(r, "sessionId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := gymstats.PathInt(r, "exerciseId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.RemoveExercise(ctx, sessionID, userID, exerciseID); err != nil {
		gymstats.WriteError(w, err, "remove session exercise")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: exerciseID}, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.add_set")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	sessionID, err := gymstats.PathInt(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if !handler.decode(w, r, &req) {
		return
	}
	if req.ExerciseID <= 0 {
		pkg.WriteJSONError(w, "exerciseId is required", http.StatusBadRequest)
		return
	}

	set, err := handler.service.AddSet(ctx, sessionID, userID, req.ExerciseID, req.SetData)
	if err != nil {
		gymstats.WriteError(w, err, "add set")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSetsLogged.Inc()
	}

	log.Debugf("set %d logged in session %d", set.ID, sessionID)
	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.update_set")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	setID, err := gymstats.PathInt(r, "setId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch SetPatch
	if !handler.decode(w, r, &patch) {
		return
	}

	set, err := handler.service.UpdateSet(ctx, setID, userID, patch)
	if err != nil {
		gymstats.WriteError(w, err, "update set")
		return
	}

	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete_set")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}
	setID, err := gymstats.PathInt(r, "setId")
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteSet(ctx, setID, userID); err != nil {
		gymstats.WriteError(w, err, "delete set")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: setID}, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.progress")
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

	records, best, err := handler.service.Progress(ctx, userID, exerciseID, limit)
	if err != nil {
		gymstats.WriteError(w, err, "exercise progress")
		return
	}
	if records == nil {
		records = []ProgressRecord{}
	}

	pkg.WriteJSON(w, ProgressResponse{
		ExerciseID: exerciseID,
		Progress:   records,
		Best:       best,
	}, http.StatusOK)
}

func (handler *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !gymstats.IsJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
