package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"spheregen/core"
)

// Command is a request sent by a client over the websocket
type Command struct {
	Type     string  `json:"type"`               // load, transform or generate
	Path     string  `json:"path,omitempty"`     // load
	Kind     string  `json:"kind,omitempty"`     // transform: move, rotate, scale
	Axis     string  `json:"axis,omitempty"`     // transform: x, y, z
	Value    float64 `json:"value,omitempty"`    // transform
	Vertices int     `json:"vertices,omitempty"` // generate
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Server exposes a Controller to websocket clients. Model changes are
// broadcast to every client; errors only go to the client that caused them.
type Server struct {
	controller *Controller

	clientsMutex sync.RWMutex
	clients      map[*websocket.Conn]*sync.Mutex
}

func New(controller *Controller) *Server {
	return &Server{
		controller: controller,
		clients:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	return router
}

// ListenAndServe serves the routes on the given port
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Server starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.clientsMutex.Lock()
	s.clients[conn] = connMutex
	s.clientsMutex.Unlock()
	defer func() {
		s.clientsMutex.Lock()
		delete(s.clients, conn)
		s.clientsMutex.Unlock()
	}()

	// Send the current model first
	s.send(conn, s.controller.Snapshot())

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("WebSocket read error:", err)
			}
			break
		}

		msg, broadcast := s.handleCommand(cmd)
		if broadcast {
			s.broadcast(msg)
		} else {
			s.send(conn, msg)
		}
	}
}

// handleCommand runs one command and reports whether its reply concerns all
// clients
func (s *Server) handleCommand(cmd Command) (ModelMessage, bool) {
	switch cmd.Type {
	case "load":
		msg, err := s.controller.LoadModel(cmd.Path)
		if err != nil {
			log.Printf("Load %q failed: %v", cmd.Path, err)
			return msg, false
		}
		fmt.Printf("Loaded %s: %d vertices, %d edges\n", msg.Filename, msg.VertexCount, msg.EdgeCount)
		return msg, true

	case "generate":
		msg, err := s.controller.GenerateModel(cmd.Vertices)
		if err != nil {
			log.Printf("Generate %d failed: %v", cmd.Vertices, err)
			return msg, false
		}
		fmt.Printf("Generated sphere: %d vertices, %d edges\n", msg.VertexCount, msg.EdgeCount)
		return msg, true

	case "transform":
		kind, ok := core.ParseTransformKind(cmd.Kind)
		if !ok {
			return ModelMessage{Type: TypeModelError, Error: fmt.Sprintf("Unknown transform %q", cmd.Kind)}, false
		}
		axis, ok := core.ParseAxis(cmd.Axis)
		if !ok && kind != core.Scale {
			return ModelMessage{Type: TypeModelError, Error: fmt.Sprintf("Unknown axis %q", cmd.Axis)}, false
		}
		return s.controller.TransformModel(kind, cmd.Value, axis), true
	}

	return ModelMessage{Type: TypeModelError, Error: fmt.Sprintf("Unknown command %q", cmd.Type)}, false
}

func (s *Server) send(conn *websocket.Conn, msg ModelMessage) {
	s.clientsMutex.RLock()
	mutex, ok := s.clients[conn]
	s.clientsMutex.RUnlock()
	if !ok {
		return
	}

	mutex.Lock()
	err := conn.WriteJSON(msg)
	mutex.Unlock()
	if err != nil {
		log.Println("WebSocket write error:", err)
	}
}

func (s *Server) broadcast(msg ModelMessage) {
	s.clientsMutex.RLock()
	clientsToRemove := []*websocket.Conn{}
	for client, mutex := range s.clients {
		mutex.Lock()
		err := client.WriteJSON(msg)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			client.Close()
			clientsToRemove = append(clientsToRemove, client)
		}
	}
	s.clientsMutex.RUnlock()

	// Remove failed clients
	if len(clientsToRemove) > 0 {
		s.clientsMutex.Lock()
		for _, client := range clientsToRemove {
			delete(s.clients, client)
		}
		s.clientsMutex.Unlock()
	}
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()
	return len(s.clients)
}
