package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"spheregen/core"
)

var (
	ErrWrongExtension = errors.New("wrong file extension, expected .obj")
	ErrFailedToOpen   = errors.New("failed to open file")
	ErrIncorrectData  = errors.New("incorrect data in file")
)

// minFileNameLength is the shortest accepted path: one character plus ".obj"
const minFileNameLength = 5

// Load reads an OBJ file into a wireframe. The path must end in ".obj".
func Load(path string) (*core.Wireframe, error) {
	if !HasObjExtension(path) {
		return nil, fmt.Errorf("%w: %q", ErrWrongExtension, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpen, err)
	}
	defer f.Close()

	return Parse(f)
}

// HasObjExtension reports whether path looks like an OBJ file name
func HasObjExtension(path string) bool {
	return len(path) >= minFileNameLength && strings.HasSuffix(path, ".obj")
}

// Parse reads "v" and "f" records. Every face becomes a closed loop of edges
// between 0-based vertex indices. Comments and other record types are
// skipped. Lines may be of any length. The model is normalized once parsing
// succeeds.
func Parse(r io.Reader) (*core.Wireframe, error) {
	w := &core.Wireframe{
		Vertices: make([]mgl64.Vec3, 0, 1000),
		Edges:    make([][2]int, 0, 2000),
	}

	br := bufio.NewReader(r)

	lineNo := 0
	indices := make([]int, 0, 10)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("%w: %w", ErrIncorrectData, readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}
		lineNo++
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "" || line[0] == '#':
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line[2:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrIncorrectData, lineNo, err)
			}
			w.Vertices = append(w.Vertices, v)
		case strings.HasPrefix(line, "f "):
			indices = parseFaceIndices(indices[:0], line[2:])
			w.Edges = core.AppendPolygonEdges(w.Edges, indices)
		}

		if readErr == io.EOF {
			break
		}
	}

	w.Normalize()
	return w, nil
}

func parseVertex(s string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return v, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, err
		}
		v[i] = c
	}
	return v, nil
}

// parseFaceIndices appends the 0-based vertex index of each token. Only the
// leading integer of a token counts, so "7/2/5" is vertex 7. Tokens without
// a positive leading integer are dropped.
func parseFaceIndices(dst []int, s string) []int {
	for _, token := range strings.Split(s, " ") {
		if token == "" {
			continue
		}
		idx, ok := leadingInt(token)
		if !ok || idx <= 0 {
			continue
		}
		dst = append(dst, idx-1)
	}
	return dst
}

func leadingInt(token string) (int, bool) {
	end := 0
	if end < len(token) && (token[end] == '-' || token[end] == '+') {
		end++
	}
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
