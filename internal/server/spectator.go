package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/world"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Spectator streams world snapshots to websocket clients. Slow clients miss
// frames instead of holding back the simulation.
type Spectator struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	latest  atomic.Pointer[[]byte]
	logger  log.Log
}

func NewSpectator(logger log.Log) *Spectator {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Spectator{
		clients: make(map[*client]struct{}),
		logger:  logger.Named("spectator"),
	}
}

// Handler serves the feed on /ws and the latest frame as JSON on /snapshot.
func (s *Spectator) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/snapshot", s.serveSnapshot)
	return mux
}

// Publish encodes snap and queues it for every connected client.
func (s *Spectator) Publish(snap world.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.latest.Store(&b)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- b:
		default:
		}
	}
	return nil
}

// Clients returns the number of connected spectators.
func (s *Spectator) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Spectator) add(c *client) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
}

func (s *Spectator) remove(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
}

func (s *Spectator) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Error(err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if b := s.latest.Load(); b != nil {
		c.send <- *b
	}
	s.add(c)
	s.logger.Debug("spectator connected", log.String("remote", r.RemoteAddr))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		s.remove(c)
		_ = conn.Close()
		s.logger.Debug("spectator disconnected", log.String("remote", r.RemoteAddr))
	}()
	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case b := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}

func (s *Spectator) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	b := s.latest.Load()
	if b == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(*b)
}
