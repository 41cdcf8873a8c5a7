package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddWorkout(ctx context.Context, userID int, details Details) (*Workout, error)
	GetWorkout(ctx context.Context, id, userID int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int) ([]Workout, error)
	UpdateWorkout(ctx context.Context, id, userID int, patch Patch) (*Workout, error)
	DeleteWorkout(ctx context.Context, id, userID int) error
	AddWorkoutExercise(ctx context.Context, workoutID, userID int, item ExerciseItem) (*Workout, error)
	RemoveWorkoutExercise(ctx context.Context, workoutID, userID, exerciseID int) (*Workout, error)
	MoveWorkoutExercise(ctx context.Context, workoutID, userID, exerciseID, number int) (*Workout, error)
}

type routinesRepo interface {
	AddRoutine(ctx context.Context, userID int, details Details) (*Routine, error)
	GetRoutine(ctx context.Context, id, userID int) (*Routine, error)
	ListRoutines(ctx context.Context, userID int) ([]Routine, error)
	UpdateRoutine(ctx context.Context, id, userID int, patch Patch) (*Routine, error)
	DeleteRoutine(ctx context.Context, id, userID int) error
	AddRoutineWorkout(ctx context.Context, routineID, userID int, item WorkoutItem) (*Routine, error)
	RemoveRoutineWorkout(ctx context.Context, routineID, userID, workoutID int) (*Routine, error)
	MoveRoutineWorkout(ctx context.Context, routineID, userID, workoutID, number int) (*Routine, error)
}

type WorkoutsResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type RoutinesResponse struct {
	Routines []Routine `json:"routines"`
	Total    int       `json:"total"`
}

type OrderRequest struct {
	Number int `json:"number"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	workouts workoutsRepo
	routines routinesRepo
}

func NewHandler(workouts workoutsRepo, routines routinesRepo) *Handler {
	return &Handler{
		workouts: workouts,
		routines: routines,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	wr := r.PathPrefix("/workouts").Subrouter()
	wr.HandleFunc("", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	wr.HandleFunc("", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	wr.HandleFunc("/{id:[0-9]+}", handler.HandleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	wr.HandleFunc("/{id:[0-9]+}", handler.HandleUpdateWorkout).Methods("PUT", "OPTIONS").Name("update-workout")
	wr.HandleFunc("/{id:[0-9]+}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	wr.HandleFunc("/{id:[0-9]+}/exercises", handler.HandleAddWorkoutExercise).Methods("POST", "OPTIONS").Name("add-workout-exercise")
	wr.HandleFunc("/{workoutId:[0-9]+}/exercises/{exerciseId:[0-9]+}", handler.HandleRemoveWorkoutExercise).Methods("DELETE", "OPTIONS").Name("remove-workout-exercise")
	wr.HandleFunc("/{workoutId:[0-9]+}/exercises/{exerciseId:[0-9]+}/order", handler.HandleMoveWorkoutExercise).Methods("PUT", "OPTIONS").Name("order-workout-exercise")

	rr := r.PathPrefix("/routines").Subrouter()
	rr.HandleFunc("", handler.HandleListRoutines).Methods("GET", "OPTIONS").Name("list-routines")
	rr.HandleFunc("", handler.HandleAddRoutine).Methods("POST", "OPTIONS").Name("new-routine")
	rr.HandleFunc("/{id:[0-9]+}", handler.HandleGetRoutine).Methods("GET", "OPTIONS").Name("get-routine")
	rr.HandleFunc("/{id:[0-9]+}", handler.HandleUpdateRoutine).Methods("PUT", "OPTIONS").Name("update-routine")
	rr.HandleFunc("/{id:[0-9]+}", handler.HandleDeleteRoutine).Methods("DELETE", "OPTIONS").Name("delete-routine")
	rr.HandleFunc("/{id:[0-9]+}/workouts", handler.HandleAddRoutineWorkout).Methods("POST", "OPTIONS").Name("add-routine-workout")
	rr.HandleFunc("/{routineId:[0-9]+}/workouts/{workoutId:[0-9]+}", handler.HandleRemoveRoutineWorkout).Methods("DELETE", "OPTIONS").Name("remove-routine-workout")
	rr.HandleFunc("/{routineId:[0-9]+}/workouts/{workoutId:[0-9]+}/order", handler.HandleMoveRoutineWorkout).Methods("PUT", "OPTIONS").Name("order-routine-workout")
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var details Details
	if !decodeJSON(w, r, &details) {
		return
	}
	details.Normalize()
	if err := details.Validate(); err != nil {
		gymstats.WriteError(w, err, "new workout")
		return
	}

	workout, err := handler.workouts.AddWorkout(ctx, userID, details)
	if err != nil {
		gymstats.WriteError(w, err, "add workout")
		return
	}

	log.Debugf("new workout added: %d [%s]", workout.ID, workout.Name)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	workout, err := handler.workouts.GetWorkout(ctx, ids[0], userID)
	if err != nil {
		gymstats.WriteError(w, err, "get workout")
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	workouts, err := handler.workouts.ListWorkouts(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list workouts")
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	pkg.WriteJSON(w, WorkoutsResponse{Workouts: workouts, Total: len(workouts)}, http.StatusOK)
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	var patch Patch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		gymstats.WriteError(w, ErrEmptyPatch, "update workout")
		return
	}

	workout, err := handler.workouts.UpdateWorkout(ctx, ids[0], userID, patch)
	if err != nil {
		gymstats.WriteError(w, err, "update workout")
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	if err := handler.workouts.DeleteWorkout(ctx, ids[0], userID); err != nil {
		gymstats.WriteError(w, err, "delete workout")
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: ids[0]}, http.StatusOK)
}

func (handler *Handler) HandleAddWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add_exercise")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	var item ExerciseItem
	if !decodeJSON(w, r, &item) {
		return
	}
	item.Normalize()
	if err := item.Validate(); err != nil {
		gymstats.WriteError(w, err, "add workout exercise")
		return
	}

	workout, err := handler.workouts.AddWorkoutExercise(ctx, ids[0], userID, item)
	if err != nil {
		gymstats.WriteError(w, err, "add workout exercise")
		return
	}
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleRemoveWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.remove_exercise")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "workoutId", "exerciseId")
	if !ok {
		return
	}

	workout, err := handler.workouts.RemoveWorkoutExercise(ctx, ids[0], userID, ids[1])
	if err != nil {
		gymstats.WriteError(w, err, "remove workout exercise")
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleMoveWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.order_exercise")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "workoutId", "exerciseId")
	if !ok {
		return
	}

	var req OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Number < 1 {
		gymstats.WriteError(w, ErrInvalidPosition, "order workout exercise")
		return
	}

	workout, err := handler.workouts.MoveWorkoutExercise(ctx, ids[0], userID, ids[1], req.Number)
	if err != nil {
		gymstats.WriteError(w, err, "order workout exercise")
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleAddRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.new")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	var details Details
	if !decodeJSON(w, r, &details) {
		return
	}
	details.Normalize()
	if err := details.Validate(); err != nil {
		gymstats.WriteError(w, err, "new routine")
		return
	}

	routine, err := handler.routines.AddRoutine(ctx, userID, details)
	if err != nil {
		gymstats.WriteError(w, err, "add routine")
		return
	}

	log.Debugf("new routine added: %d [%s]", routine.ID, routine.Name)
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleGetRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	routine, err := handler.routines.GetRoutine(ctx, ids[0], userID)
	if err != nil {
		gymstats.WriteError(w, err, "get routine")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return
	}

	routines, err := handler.routines.ListRoutines(ctx, userID)
	if err != nil {
		gymstats.WriteError(w, err, "list routines")
		return
	}
	if routines == nil {
		routines = []Routine{}
	}

	pkg.WriteJSON(w, RoutinesResponse{Routines: routines, Total: len(routines)}, http.StatusOK)
}

func (handler *Handler) HandleUpdateRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	var patch Patch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		gymstats.WriteError(w, ErrEmptyPatch, "update routine")
		return
	}

	routine, err := handler.routines.UpdateRoutine(ctx, ids[0], userID, patch)
	if err != nil {
		gymstats.WriteError(w, err, "update routine")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	if err := handler.routines.DeleteRoutine(ctx, ids[0], userID); err != nil {
		gymstats.WriteError(w, err, "delete routine")
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: ids[0]}, http.StatusOK)
}

func (handler *Handler) HandleAddRoutineWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add_workout")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "id")
	if !ok {
		return
	}

	var item WorkoutItem
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := item.Validate(); err != nil {
		gymstats.WriteError(w, err, "add routine workout")
		return
	}

	routine, err := handler.routines.AddRoutineWorkout(ctx, ids[0], userID, item)
	if err != nil {
		gymstats.WriteError(w, err, "add routine workout")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleRemoveRoutineWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.remove_workout")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "routineId", "workoutId")
	if !ok {
		return
	}

	routine, err := handler.routines.RemoveRoutineWorkout(ctx, ids[0], userID, ids[1])
	if err != nil {
		gymstats.WriteError(w, err, "remove routine workout")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleMoveRoutineWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.order_workout")
	defer span.End()

	userID, ids, ok := requestIDs(w, r, "routineId", "workoutId")
	if !ok {
		return
	}

	var req OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Number < 1 {
		gymstats.WriteError(w, ErrInvalidPosition, "order routine workout")
		return
	}

	routine, err := handler.routines.MoveRoutineWorkout(ctx, ids[0], userID, ids[1], req.Number)
	if err != nil {
		gymstats.WriteError(w, err, "order routine workout")
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

// requestIDs reads the user and the named path ids, answering the request on failure.
func requestIDs(w http.ResponseWriter, r *http.Request, names ...string) (int, []int, bool) {
	userID, ok := auth.RequestUserID(w, r)
	if !ok {
		return 0, nil, false
	}
	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, err := gymstats.PathInt(r, name)
		if err != nil {
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return 0, nil, false
		}
		ids = append(ids, id)
	}
	return userID, ids, true
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
