package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/jobpilot/logging"
)

func main() {
	data, err := logging.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating logging schema: %v", err)
	}

	outputDir := "schema/definitions"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "logging.schema.json")
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Generated logging schema at %s", outputPath)
}
