package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"salestrack/internal/app/server"
)

func main() {
	// Optional for local development; the environment wins in deployments.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := server.Run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
