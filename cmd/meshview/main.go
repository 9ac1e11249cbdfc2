package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"spheregen/config"
	"spheregen/core"
	"spheregen/objfile"
	"spheregen/rendering/opengl"
)

func main() {
	// GLFW must run on the main thread
	runtime.LockOSThread()

	var (
		settingsPath = flag.String("config", config.DefaultPath, "Settings file")
		objPath      = flag.String("file", "", "OBJ file to view")
		vertices     = flag.Int("vertices", 1000, "Sphere size to view when no file is given")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	model, title, err := loadModel(*objPath, *vertices)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Viewing %s: %d vertices, %d edges\n", title, model.VertexCount(), model.EdgeCount())
	fmt.Println("Controls: drag to orbit, scroll to zoom, arrows/PageUp/PageDown move, X/Y/Z rotate, +/- scale, Esc quits")

	renderer, err := opengl.NewWireframeRenderer(settings.Viewer.Width, settings.Viewer.Height, "Mesh Viewer - "+title)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	renderer.SetModel(model)
	for !renderer.ShouldClose() {
		renderer.Render()
		renderer.PollEvents()
	}
}

func loadModel(path string, vertices int) (*core.Wireframe, string, error) {
	if path != "" {
		model, err := objfile.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		return model, filepath.Base(path), nil
	}

	if err := core.CheckVertexCount(vertices); err != nil {
		return nil, "", err
	}
	return core.GenerateSphere(vertices).Wireframe(), fmt.Sprintf("sphere_%d.obj", vertices), nil
}
