package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qrave1/HotSeat/internal/application/config"
	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/application/metric"
	"github.com/qrave1/HotSeat/internal/infra/adapters/memory"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
	"github.com/qrave1/HotSeat/internal/infra/ports/http/handlers"
	"github.com/qrave1/HotSeat/internal/infra/ports/http/server"
	"github.com/qrave1/HotSeat/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func runApp(parent context.Context) {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: level},
			),
		),
	)

	dbConn, err := postgres.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		slog.Error("connect to postgres", slog.Any(constant.Error, err))
		os.Exit(1)
	}
	defer dbConn.Close()

	meetingRepo := repository.NewMeetingRepo(dbConn)
	participantRepo := repository.NewParticipantRepo(dbConn)

	connRegistry := memory.NewConnectionRegistry()
	roomDirectory := memory.NewRoomDirectory()
	meetingMembersRepo := memory.NewMeetingMembersRepository()
	wsConnRepo := memory.NewWSConnectionRepository(cfg.WebSocket)

	signalingUsecase := usecase.NewSignalingUsecase(connRegistry, roomDirectory, wsConnRepo)
	meetingPhaseUsecase := usecase.NewMeetingPhaseUsecase(meetingRepo, participantRepo, meetingMembersRepo, wsConnRepo)
	meetingUsecase := usecase.NewMeetingUsecase(meetingRepo, participantRepo)

	iceHandler := handlers.NewIceHandler(cfg)
	meetingHandler := handlers.NewMeetingHandler(meetingUsecase)
	roomHandler := handlers.NewRoomHandler(signalingUsecase)
	wsHandler := handlers.NewWebSocketHandler(cfg, signalingUsecase, meetingPhaseUsecase, wsConnRepo)

	echoSrv := server.New(iceHandler, meetingHandler, roomHandler, wsHandler)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	// Запускаем HTTP сервер
	go func() {
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	// Запускаем сервер метрик
	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	slog.Info("hotseat started", slog.String("port", cfg.Port), slog.String("metric_port", cfg.MetricPort))

	// Ожидаем сигнал завершения или ошибку сервера
	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", slog.Any(constant.Error, err))
			os.Exit(1)
		}
	case err := <-metricsSrvCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", slog.Any(constant.Error, err))
			os.Exit(1)
		}
	}

	// Graceful shutdown
	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}
