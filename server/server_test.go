package server

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func startServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(NewController())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Every connection starts with a snapshot
	readMessage(t, conn)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ModelMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ModelMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestHealthz(t *testing.T) {
	_, ts := startServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestGenerateAndTransform(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Command{Type: "generate", Vertices: 100}); err != nil {
		t.Fatal(err)
	}
	msg := readMessage(t, conn)
	if msg.Type != TypeModelLoaded || msg.VertexCount != 112 {
		t.Fatalf("generate reply = %s with %d vertices", msg.Type, msg.VertexCount)
	}
	north := msg.Vertices[0]

	if err := conn.WriteJSON(Command{Type: "transform", Kind: "move", Axis: "z", Value: 3}); err != nil {
		t.Fatal(err)
	}
	msg = readMessage(t, conn)
	if msg.Type != TypeModelTransformed {
		t.Fatalf("transform reply type = %q", msg.Type)
	}
	if got := msg.Vertices[0][2]; got != north[2]+3 {
		t.Errorf("north pole z = %g, want %g", got, north[2]+3)
	}

	if err := conn.WriteJSON(Command{Type: "transform", Kind: "scale", Value: 2}); err != nil {
		t.Fatal(err)
	}
	msg = readMessage(t, conn)
	if got := msg.Vertices[0][2]; got != 2*(north[2]+3) {
		t.Errorf("scaled north pole z = %g, want %g", got, 2*(north[2]+3))
	}
}

func TestLoadCommand(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Command{Type: "load", Path: writeSphere(t, 8)}); err != nil {
		t.Fatal(err)
	}
	msg := readMessage(t, conn)
	if msg.Type != TypeModelLoaded || msg.VertexCount != 12 || msg.Filename != "sphere.obj" {
		t.Errorf("load reply = %+v", msg)
	}
}

func TestCommandErrors(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{name: "unknown command", cmd: Command{Type: "explode"}, want: `Unknown command "explode"`},
		{name: "unknown transform", cmd: Command{Type: "transform", Kind: "shear", Axis: "x"}, want: `Unknown transform "shear"`},
		{name: "unknown axis", cmd: Command{Type: "transform", Kind: "move", Axis: "w"}, want: `Unknown axis "w"`},
		{name: "bad extension", cmd: Command{Type: "load", Path: "model.txt"}, want: "Wrong file extension, expected .obj"},
		{name: "too few vertices", cmd: Command{Type: "generate", Vertices: 1}, want: "Vertex count must be at least 2"},
		{name: "too many vertices", cmd: Command{Type: "generate", Vertices: math.MaxInt}, want: "Vertex count must be at most 1000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := conn.WriteJSON(tc.cmd); err != nil {
				t.Fatal(err)
			}
			msg := readMessage(t, conn)
			if msg.Type != TypeModelError || msg.Error != tc.want {
				t.Errorf("reply = %+v, want error %q", msg, tc.want)
			}
		})
	}
}

func TestBroadcast(t *testing.T) {
	s, ts := startServer(t)
	sender := dial(t, ts)
	watcher := dial(t, ts)

	if n := s.ClientCount(); n != 2 {
		t.Fatalf("ClientCount = %d, want 2", n)
	}

	if err := sender.WriteJSON(Command{Type: "generate", Vertices: 50}); err != nil {
		t.Fatal(err)
	}
	if msg := readMessage(t, sender); msg.Type != TypeModelLoaded {
		t.Errorf("sender got %q", msg.Type)
	}
	if msg := readMessage(t, watcher); msg.Type != TypeModelLoaded || msg.VertexCount != 60 {
		t.Errorf("watcher got %q with %d vertices", msg.Type, msg.VertexCount)
	}

	// Errors are not broadcast: the next message the watcher sees is the transform
	if err := sender.WriteJSON(Command{Type: "explode"}); err != nil {
		t.Fatal(err)
	}
	readMessage(t, sender)
	if err := sender.WriteJSON(Command{Type: "transform", Kind: "rotate", Axis: "x", Value: 90}); err != nil {
		t.Fatal(err)
	}
	readMessage(t, sender)
	if msg := readMessage(t, watcher); msg.Type != TypeModelTransformed {
		t.Errorf("watcher got %q, want %q", msg.Type, TypeModelTransformed)
	}
}
