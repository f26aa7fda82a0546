package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/nmea_computer/internal/config"
	"github.com/relabs-tech/nmea_computer/internal/gps"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// webState holds the last fix and the live websocket clients.
type webState struct {
	mu      sync.RWMutex
	last    gps.Fix
	haveFix bool

	// clientsMu also serializes writes, a websocket.Conn allows one writer.
	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
}

func newWebState() *webState {
	return &webState{clients: make(map[*websocket.Conn]struct{})}
}

// update stores f and pushes it to every websocket client.
func (s *webState) update(f gps.Fix) {
	s.mu.Lock()
	s.last = f
	s.haveFix = true
	s.mu.Unlock()

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(f); err != nil {
			log.Printf("web: websocket write error: %v", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *webState) lastFix() (gps.Fix, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.haveFix
}

func (s *webState) routes(staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gps", s.handleGPS)
	mux.HandleFunc("/api/gps.geojson", s.handleGeoJSON)
	mux.HandleFunc("/ws/gps", s.handleWS)
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	return mux
}

func (s *webState) handleGPS(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lastFix()
	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Printf("web: json encode error: %v", err)
	}
}

func (s *webState) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lastFix()
	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	body, err := f.Feature().MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(body)
}

// handleWS streams every new fix, starting with the last known one.
func (s *webState) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	if f, ok := s.lastFix(); ok {
		if err := conn.WriteJSON(f); err != nil {
			log.Printf("web: websocket write error: %v", err)
		}
	}
	s.clientsMu.Unlock()

	// Reads only detect the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket error: %v", err)
			}
			break
		}
	}

	s.clientsMu.Lock()
	delete(s.clients, conn)
	s.clientsMu.Unlock()
	conn.Close()
}

// RunWeb serves the latest fix over HTTP and websocket.
func RunWeb() error {
	cfg := config.Get()
	state := newWebState()

	// 1) Connect to MQTT broker
	client, err := connectMQTT("web", cfg.MQTTBroker, cfg.MQTTClientIDWeb)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	// 2) Subscribe to the GPS topic and fan out each fix
	err = subscribe("web", client, cfg.TopicGPS, func(_ mqtt.Client, msg mqtt.Message) {
		var f gps.Fix
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("web: MQTT payload unmarshal error: %v", err)
			return
		}
		state.update(f)
	})
	if err != nil {
		return err
	}

	// 3) HTTP
	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web: server listening on %s", addr)
	return http.ListenAndServe(addr, state.routes(cfg.WebStaticDir))
}
