package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arbazmubasher1/TicketDashboard/internal/auth"
	"github.com/arbazmubasher1/TicketDashboard/internal/config"
	"github.com/arbazmubasher1/TicketDashboard/internal/router"
	"github.com/arbazmubasher1/TicketDashboard/internal/service"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
	"github.com/arbazmubasher1/TicketDashboard/internal/store/memory"
	"github.com/arbazmubasher1/TicketDashboard/internal/store/sheets"
	"github.com/arbazmubasher1/TicketDashboard/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// identity table
	table, err := auth.LoadTable(cfg.UsersFile)
	if err != nil {
		l.Fatal().Err(err).Msg("users file load failed")
	}

	// backing store
	var st store.Store
	switch cfg.Store {
	case "memory":
		st = memory.New()
		l.Warn().Msg("using in-memory store; tickets will not survive a restart")
	default:
		st, err = sheets.Open(context.Background(), cfg)
		if err != nil {
			l.Fatal().Err(err).Msg("sheets connect failed")
		}
		l.Info().Str("sheet", cfg.SheetName).Msg("connected to spreadsheet")
	}

	// http
	svc := service.NewTicketService(st)
	r := router.New(l, table, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
