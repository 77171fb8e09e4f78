package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/cli"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/logger"
)

func main() {
	// .env is optional; flags and real env vars win
	_ = godotenv.Load()

	logger.Init()

	if err := cli.Execute(); err != nil {
		logger.Error("Draft helper exited with error", "error", err)
		os.Exit(1)
	}
}
