package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/commons"
	"github.com/Joaomarcellodev/IzziOrder/internal/config"
	"github.com/Joaomarcellodev/IzziOrder/internal/infrastructure/logger"
	"github.com/Joaomarcellodev/IzziOrder/internal/menu"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification/ws"
	"github.com/Joaomarcellodev/IzziOrder/internal/order"
	orderrepository "github.com/Joaomarcellodev/IzziOrder/internal/order/repository"
	"github.com/Joaomarcellodev/IzziOrder/internal/report"
	"github.com/Joaomarcellodev/IzziOrder/internal/server"
	"github.com/Joaomarcellodev/IzziOrder/internal/table"
	tablerepository "github.com/Joaomarcellodev/IzziOrder/internal/table/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	seed := commons.DefaultSeed()
	if cfg.Seed.File != "" {
		seed, err = commons.LoadSeed(cfg.Seed.File)
		if err != nil {
			zapLogger.Fatal("loading seed file", zap.String("path", cfg.Seed.File), zap.Error(err))
		}
		zapLogger.Info("seed file loaded", zap.String("path", cfg.Seed.File))
	}

	clk := clock.System()
	now := clk.Now()

	menuItems, err := seed.MenuItems(now)
	if err != nil {
		zapLogger.Fatal("building menu seed", zap.Error(err))
	}
	floorTables, err := seed.FloorTables(cfg.Floor.TableCount)
	if err != nil {
		zapLogger.Fatal("building floor seed", zap.Error(err))
	}
	boardOrders, err := seed.BoardOrders(now)
	if err != nil {
		zapLogger.Fatal("building board seed", zap.Error(err))
	}

	menuRepo := menu.NewInMemoryRepository(menuItems)
	orderRepo := orderrepository.NewInMemoryOrderRepository(boardOrders)
	tableRepo := tablerepository.NewInMemoryTableRepository(floorTables)
	ledger := tablerepository.NewInMemoryPaymentLedger()

	hub := ws.NewHub(zapLogger)
	go hub.Run()

	sink := notification.Multi{
		notification.NewLogSink(zapLogger),
		hub,
	}

	catalog := menu.NewService(menuRepo, clk)

	menuCtrl := menu.NewModule(menuRepo, clk, sink, zapLogger)
	orderCtrl := order.NewModule(orderRepo, catalog, clk, sink, zapLogger)
	tableCtrl := table.NewModule(tableRepo, ledger, catalog, clk, sink, zapLogger)
	reportCtrl := report.NewModule(orderRepo, tableRepo, ledger, clk, zapLogger)

	router := server.NewRouter(menuCtrl, orderCtrl, tableCtrl, reportCtrl, hub, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
