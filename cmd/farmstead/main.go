// Package main is the entry point for Farmstead.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_FARMSTEAD_API_KEY and FARMSTEAD_* flags available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("farmstead: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key the exporter settings are left alone.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_FARMSTEAD_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_FARMSTEAD_DATASET")
	if dataset == "" {
		dataset = "farmstead" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	// The .env file may hold an unexpanded variable reference, so the
	// header is built here
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
