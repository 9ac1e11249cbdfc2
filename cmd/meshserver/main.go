package main

import (
	"flag"
	"fmt"
	"log"

	"spheregen/config"
	"spheregen/server"
)

func main() {
	var (
		settingsPath = flag.String("config", config.DefaultPath, "Settings file")
		port         = flag.Int("port", 0, "Port to listen on (overrides the settings file)")
		objPath      = flag.String("file", "", "OBJ file to load at startup")
		vertices     = flag.Int("vertices", 0, "Generate a sphere with about this many vertices at startup")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *port != 0 {
		settings.Server.Port = *port
	}

	controller := server.NewController()
	switch {
	case *objPath != "":
		msg, err := controller.LoadModel(*objPath)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *objPath, err)
		}
		fmt.Printf("Loaded %s: %d vertices, %d edges\n", msg.Filename, msg.VertexCount, msg.EdgeCount)
	case *vertices != 0:
		msg, err := controller.GenerateModel(*vertices)
		if err != nil {
			log.Fatalf("Failed to generate sphere: %v", err)
		}
		fmt.Printf("Generated sphere: %d vertices, %d edges\n", msg.VertexCount, msg.EdgeCount)
	}

	log.Fatal(server.New(controller).ListenAndServe(settings.Server.Port))
}
