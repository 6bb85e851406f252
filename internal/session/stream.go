package session

import (
	"errors"
	"net/http"

	"github.com/formsight/formsight/internal/pose"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Frame is one pose detection result sent by the client. An empty or
// absent landmarks list means the detector saw no person in the frame.
type Frame struct {
	Landmarks []*pose.Landmark `json:"landmarks"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// cross-origin is handled by the CORS middleware for the rest of
		// the API; browser clients connect from the same origins
		return true
	},
}

// handleStream upgrades the connection and runs the frame loop: one
// snapshot written back per frame received, strictly in order. The
// session itself is shared, so two concurrent streams simply interleave
// on the session mutex.
func (handler *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("analyze stream upgrade failed: %s", err)
		return
	}
	defer conn.Close()

	log.Debugf("analyze stream connected: %s", r.RemoteAddr)

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Errorf("analyze stream read failed: %s", err)
			}
			return
		}

		snapshot, err := handler.manager.ProcessFrame(r.Context(), frame.Landmarks)
		if err != nil {
			if errors.Is(err, ErrNoActiveExercise) {
				if err := conn.WriteJSON(map[string]string{"error": "no active exercise"}); err != nil {
					return
				}
				continue
			}
			log.Errorf("analyze stream frame failed: %s", err)
			return
		}

		if err := conn.WriteJSON(snapshot); err != nil {
			log.Errorf("analyze stream write failed: %s", err)
			return
		}
	}
}
