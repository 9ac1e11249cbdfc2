package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"spheregen/core"
)

// Write serializes the mesh as OBJ text: a comment with the vertex count,
// one "v x y z" line per vertex and one "f i j k" line per face.
// Coordinates use the shortest decimal form that round-trips.
func Write(w io.Writer, m *core.Mesh) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "# Sphere with %d vertices\n", len(m.Vertices)); err != nil {
		return err
	}

	buf := make([]byte, 0, 80)
	for _, v := range m.Vertices {
		buf = append(buf[:0], 'v')
		for _, c := range v {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	for _, f := range m.Faces {
		buf = append(buf[:0], 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the mesh to path, creating missing parent directories and
// replacing any existing file
func WriteFile(path string, m *core.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
