package realtime

import (
	"context"
	"log"
	"net/http"
	"time"

	"courtside/app/store"

	"github.com/gorilla/websocket"
)

// Server exposes the record store's subscription hub over WebSocket.
// It runs on its own listener: fasthttp cannot hand a hijacked
// connection to gorilla, and keeping the stream off the API port also
// keeps slow consumers away from request handling.
type Server struct {
	records    *store.Store
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

func NewServer(st *store.Store, port string) *Server {
	s := &Server{
		records: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // restrict in production
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Start() error {
	log.Printf("Realtime server listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
