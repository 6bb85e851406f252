package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/formsight/formsight/internal/exercise"
	"github.com/formsight/formsight/internal/telemetry/metrics"
	"github.com/formsight/formsight/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	manager *Manager
	metrics *metrics.Manager
}

func NewHandler(manager *Manager, metrics *metrics.Manager) *Handler {
	return &Handler{
		manager: manager,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercise/{type}", handler.handleSwitchExercise).Methods("POST", "OPTIONS").Name("switch-exercise")
	router.HandleFunc("/status", handler.handleStatus).Methods("GET", "OPTIONS").Name("session-status")
	router.HandleFunc("/analyze", handler.handleAnalyze).Methods("POST", "OPTIONS").Name("analyze-frame")
	router.HandleFunc("/analyze/stream", handler.handleStream).Methods("GET").Name("analyze-stream")
}

func (handler *Handler) handleSwitchExercise(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	exerciseType := exercise.Type(vars["type"])
	if !exerciseType.IsValid() {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	if err := handler.manager.SwitchExercise(r.Context(), exerciseType); err != nil {
		log.Errorf("switch exercise to %s failed: %s", exerciseType, err)
		http.Error(w, "error, failed to switch exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("session exercise switched to: %s", exerciseType)
	pkg.WriteTextResponseOK(w, "switched:"+exerciseType.String())
}

func (handler *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	snapshot, err := handler.manager.Status()
	if err != nil {
		if errors.Is(err, ErrNoActiveExercise) {
			http.Error(w, "error, no active exercise", http.StatusNotFound)
			return
		}
		log.Errorf("get session status failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("marshal session status failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}

// HandleAnalyze runs a single frame through the session, for detector
// clients that cannot hold a websocket open.
func (handler *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var frame Frame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		log.Errorf("analyze frame failed, decode error: %s", err)
		http.Error(w, "error, invalid frame", http.StatusBadRequest)
		return
	}

	snapshot, err := handler.manager.ProcessFrame(r.Context(), frame.Landmarks)
	if err != nil {
		if errors.Is(err, ErrNoActiveExercise) {
			http.Error(w, "error, no active exercise", http.StatusConflict)
			return
		}
		log.Errorf("analyze frame failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("marshal frame snapshot failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}
