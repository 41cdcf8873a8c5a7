package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusUp       = "up"
	StatusDown     = "down"

	pingTimeout = 2 * time.Second
)

// Pinger is satisfied by the db pool and by a thin wrapper around the redis client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	versionInfo string
	db          Pinger
	redis       Pinger
	now         func() time.Time
}

func NewHandler(versionInfo string, db, redis Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		db:          db,
		redis:       redis,
		now:         time.Now,
	}
}

// SetupRoutes mounts the ops routes on mainRouter. Health is also served
// under apiRouter when the API lives behind a path prefix.
func (handler *Handler) SetupRoutes(mainRouter, apiRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	if apiRouter != nil && apiRouter != mainRouter {
		apiRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("api-health")
	}
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth always answers 200 while the process is serving, the
// dependency states are reported in the body.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	resp := HealthResponse{
		Status:    StatusOK,
		Database:  ping(ctx, "database", handler.db),
		Redis:     ping(ctx, "redis", handler.redis),
		Timestamp: handler.now().UTC(),
	}
	if resp.Database != StatusUp || resp.Redis != StatusUp {
		resp.Status = StatusDegraded
		span.SetStatus(codes.Error, "degraded")
	}
	span.SetAttributes(
		attribute.String("health.database", resp.Database),
		attribute.String("health.redis", resp.Redis),
	)

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func ping(ctx context.Context, name string, p Pinger) string {
	if p == nil {
		return StatusDown
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		log.Warnf("health: %s ping: %s", name, err)
		return StatusDown
	}
	return StatusUp
}
