package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kritsw/bankconv/internal/config"
	"github.com/kritsw/bankconv/internal/convert"
	"github.com/kritsw/bankconv/internal/database"
	"github.com/kritsw/bankconv/internal/history"
	historyStore "github.com/kritsw/bankconv/internal/history/store"
	bankconvHttp "github.com/kritsw/bankconv/internal/http"
	convertHandler "github.com/kritsw/bankconv/internal/http/convertapi"
	historyHandler "github.com/kritsw/bankconv/internal/http/historyapi"
	templatesHandler "github.com/kritsw/bankconv/internal/http/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		convertService = convert.NewService()
		historyService = history.NewService(historyStore.New(db))
	)

	var (
		convertH   = convertHandler.NewHandler(convertService, historyService, cfg.Server.MaxUploadBytes)
		templatesH = templatesHandler.NewHandler()
		historyH   = historyHandler.NewHandler(historyService)
	)

	router := bankconvHttp.New(convertH, templatesH, historyH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
