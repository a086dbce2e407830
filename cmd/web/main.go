package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"steeldash/internal/app"
)

// Embedded dashboard front-end.
//
//go:embed all:frontend
var frontendFiles embed.FS

func main() {
	frontendFS, err := fs.Sub(frontendFiles, "frontend")
	if err != nil {
		slog.Error("frontend embedding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	application, err := app.NewApplication(frontendFS)
	if err != nil {
		slog.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
