package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"design2code/config"
	"design2code/internal/cli"
)

func main() {
	// Load .env before viper so file-provided keys are visible as env vars.
	if err := godotenv.Load(); err != nil {
		// .env is optional; only complain about real read errors.
		if !os.IsNotExist(err) {
			log.Printf("Warning: error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	cli.Execute(cfg)
}
