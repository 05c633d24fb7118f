package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ludwa6/customer-support/internal/adapters/driving/cli"
)

func main() {
	// Environment overrides from a local .env file, when present.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
