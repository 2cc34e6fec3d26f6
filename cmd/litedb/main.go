package main

import (
	"log/slog"
	"os"

	"litedb/internal/domain/schema"
	"litedb/internal/logging"
	"litedb/internal/repl"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	// One catalog per process, passed down explicitly.
	db := schema.NewDatabase("main")

	if err := repl.Start(db); err != nil {
		slog.Error("repl terminated", "error", err)
		closeFn()
		os.Exit(1)
	}
}
