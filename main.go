package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"spheregen/config"
)

func main() {
	var (
		settingsPath = flag.String("config", config.DefaultPath, "Settings file with the sphere sizes and output directory")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	fmt.Println("=== UV Sphere Fixture Generator ===")
	fmt.Printf("Sizes: %v\n", settings.Generation.Sizes)
	fmt.Printf("Output directory: %s\n", settings.Generation.OutputDir)

	if err := generateTiers(settings.Generation, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
