package sensor

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// poseMessage is the wire shape the browser tracker sends. Field names are
// short because the tracker streams at camera rate.
type poseMessage struct {
	X  float64 `json:"x"`
	W  float64 `json:"w"`
	Up bool    `json:"up"`
	T  float64 `json:"t"`
}

var upgrader = websocket.Upgrader{
	// the tracker page is served from a file:// or localhost origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server accepts pose samples over a websocket and publishes them into a
// Feed. One tracker at a time is expected; a second connection simply
// overwrites the same feed.
type Server struct {
	feed *Feed
}

// NewServer creates a server publishing into feed.
func NewServer(feed *Feed) *Server {
	return &Server{feed: feed}
}

// ListenAndServe blocks serving the /pose endpoint on addr.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/pose", s.handlePose)
	log.Printf("sensor: listening on %s (ws endpoint: /pose)", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handlePose(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("sensor: upgrade:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(4 << 10)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	log.Printf("sensor: tracker connected from %s", r.RemoteAddr)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("sensor: read:", err)
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var pm poseMessage
		if err := json.Unmarshal(msg, &pm); err != nil {
			// a malformed frame is the tracker's problem, keep reading
			continue
		}
		s.feed.Publish(Sample{
			Lateral:    pm.X,
			Width:      pm.W,
			ArmsRaised: pm.Up,
			AtMs:       pm.T,
		})
	}
}
