package exercise

import (
	"encoding/json"
	"net/http"

	"github.com/formsight/formsight/internal/telemetry/tracing"
	"github.com/formsight/formsight/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler exposes the per-exercise threshold overrides for admin tuning.
type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/{type}/thresholds", handler.handleGetThresholds).Methods("GET", "OPTIONS").Name("get-thresholds")
	router.HandleFunc("/{type}/thresholds", handler.handleSetThresholds).Methods("PUT", "OPTIONS").Name("set-thresholds")
}

func (handler *Handler) handleGetThresholds(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exerciseHandler.getThresholds")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	exerciseType := Type(mux.Vars(r)["type"])
	if !exerciseType.IsValid() {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	thresholds, err := handler.repo.ThresholdsOrDefault(ctx, exerciseType)
	if err != nil {
		log.Errorf("get thresholds for %s failed: %s", exerciseType, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	thresholdsJson, err := json.Marshal(thresholds)
	if err != nil {
		log.Errorf("marshal thresholds failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, thresholdsJson)
}

func (handler *Handler) handleSetThresholds(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exerciseHandler.setThresholds")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	exerciseType := Type(mux.Vars(r)["type"])
	if !exerciseType.IsValid() {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	var thresholds Thresholds
	if err := json.NewDecoder(r.Body).Decode(&thresholds); err != nil {
		log.Errorf("set thresholds failed, decode error: %s", err)
		http.Error(w, "error, invalid thresholds", http.StatusBadRequest)
		return
	}
	if err := thresholds.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetThresholds(ctx, exerciseType, thresholds); err != nil {
		log.Errorf("set thresholds for %s failed: %s", exerciseType, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("thresholds updated for exercise: %s", exerciseType)
	pkg.WriteTextResponseOK(w, "updated:"+exerciseType.String())
}
