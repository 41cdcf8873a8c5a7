package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/equipment"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, userID int, params ExerciseParams) (*Exercise, error)
	Get(ctx context.Context, id, userID int) (*Exercise, error)
	List(ctx context.Context, userID int, muscleGroup string) ([]Exercise, error)
	Update(ctx context.Context, id, userID int, patch ExercisePatch) (*Exercise, error)
	Delete(ctx context.Context, id, userID int) error
	MuscleGroups(ctx context.Context, userID int) ([]string, error)
}

type equipmentInvalidator interface {
	Invalidate(userID, exerciseID int)
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type MuscleGroupsResponse struct {
	MuscleGroups []string `json:"muscleGroups"`
}

type CalculateWeightRequest struct {
	InputWeight float64 `json:"inputWeight"`
}

type CalculationInfo struct {
	HasPulley    bool     `json:"hasPulley"`
	IsUnilateral bool     `json:"isUnilateral"`
	BarWeight    *int     `json:"barWeight"`
	Description  []string `json:"description"`
}

type CalculateWeightResponse struct {
	ExerciseName    string          `json:"exerciseName"`
	InputWeight     float64         `json:"inputWeight"`
	ActualWeight    float64         `json:"actualWeight"`
	BilateralWeight float64         `json:"bilateralWeight"`
	CalculationInfo CalculationInfo `json:"calculationInfo"`
}

type Handler struct {
	repo      exercisesRepo
	equipment equipmentInvalidator
}

func NewHandler(repo exercisesRepo, equipment equipmentInvalidator) *Handler {
	return &Handler{
		repo:      repo,
		equipment: equipment,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	sr := r.PathPrefix("/exercises").Subrouter()
	sr.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	sr.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	sr.HandleFunc("/muscle-groups/list", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	sr.HandleFunc("/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	sr.HandleFunc("/{id:[0-9]+}/equipment", handler.HandleUpdateEquipment).Methods("PATCH", "OPTIONS").Name("update-exercise-equipment")
	sr.HandleFunc("/{id:[0-9]+}/calculate-weight", handler.HandleCalculateWeight).Methods("POST", "OPTIONS").Name("calculate-weight")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var params ExerciseParams
	if !decodeJSON(w, r, &params) {
		return
	}
	params.Normalize()
	if err := params.Validate(); err != nil {
		gymstats.WriteError(w, err, "new exercise")
		return
	}

	added, err := handler.repo.Add(ctx, userID, params)
	if err != nil {
		gymstats.WriteError(w, err, "add exercise")
		return
	}

	log.Debugf("new exercise added: %d [%s] %s", added.ID, added.Name, added.Equipment)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
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

	exercise, err := handler.repo.Get(ctx, id, userID)
	if err != nil {
		gymstats.WriteError(w, err, "get exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	muscleGroup := r.URL.Query().Get("muscle_group")
	if muscleGroup == "" {
		muscleGroup = r.URL.Query().Get("muscleGroup")
	}

	exercises, err := handler.repo.List(ctx, userID, muscleGroup)
	if err != nil {
		gymstats.WriteError(w, err, "list exercises")
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, ListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
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

	var patch ExercisePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		gymstats.WriteError(w, ErrEmptyPatch, "update exercise")
		return
	}

	handler.update(ctx, w, id, userID, patch)
}

func (handler *Handler) HandleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update_equipment")
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

	var patch equipment.Patch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		gymstats.WriteError(w, ErrEmptyPatch, "update exercise equipment")
		return
	}

	handler.update(ctx, w, id, userID, ExercisePatch{Patch: patch})
}

func (handler *Handler) update(ctx context.Context, w http.ResponseWriter, id, userID int, patch ExercisePatch) {
	updated, err := handler.repo.Update(ctx, id, userID, patch)
	if err != nil {
		gymstats.WriteError(w, err, "update exercise")
		return
	}
	handler.equipment.Invalidate(userID, id)

	log.Debugf("exercise %d updated, equipment: %s", id, updated.Equipment)
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
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

	if err := handler.repo.Delete(ctx, id, userID); err != nil {
		gymstats.WriteError(w, err, "delete exercise")
		return
	}
	handler.equipment.Invalidate(userID, id)

	pkg.WriteJSON(w, DeleteExerciseResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscle_groups")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	groups, err := handler.repo.MuscleGroups(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list muscle groups")
		return
	}
	if groups == nil {
		groups = []string{}
	}

	pkg.WriteJSON(w, MuscleGroupsResponse{MuscleGroups: groups}, http.StatusOK)
}

// HandleCalculateWeight converts the weight entered on the machine or bar into
// the load actually moved.
func (handler *Handler) HandleCalculateWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.calculate_weight")
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

	var req CalculateWeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	exercise, err := handler.repo.Get(ctx, id, userID)
	if err != nil {
		gymstats.WriteError(w, err, "calculate weight")
		return
	}

	cfg := exercise.Equipment
	actual, err := equipment.ActualWeight(req.InputWeight, cfg)
	if err != nil {
		gymstats.WriteError(w, err, "calculate weight")
		return
	}

	pkg.WriteJSON(w, CalculateWeightResponse{
		ExerciseName:    exercise.Name,
		InputWeight:     req.InputWeight,
		ActualWeight:    actual,
		BilateralWeight: equipment.BilateralEquivalent(actual, cfg),
		CalculationInfo: CalculationInfo{
			HasPulley:    cfg.HasPulley,
			IsUnilateral: cfg.IsUnilateral,
			BarWeight:    cfg.BarWeight,
			Description:  equipment.DescribeFormula(cfg),
		},
	}, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
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
