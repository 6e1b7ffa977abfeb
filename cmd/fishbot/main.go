package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lakeview-games/fishbot/internal/api"
	"github.com/lakeview-games/fishbot/internal/bot"
	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
	"github.com/lakeview-games/fishbot/internal/game"
	"github.com/lakeview-games/fishbot/internal/logger"
	"github.com/lakeview-games/fishbot/internal/store"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	logg, err := logger.New(logger.Config{
		Level:       config.LogLevel,
		Environment: config.Environment,
		ServiceName: "fishbot",
	})
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logg.Sync()

	table := fish.Default()
	tables := economy.DefaultTables()

	st, err := store.OpenSQLite(config.DBPath)
	if err != nil {
		logg.Error("failed to open store", err)
		os.Exit(1)
	}
	defer st.Close()

	resolver := economy.NewResolver(tables, table, nil)
	svc := game.New(st, tables, table, resolver, game.RealClock{}, logg, config.AdsgramBlockID)

	tg, err := bot.New(config.BotToken, config.WebAppURL, table, logg)
	if err != nil {
		logg.Error("failed to start bot", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tg.Run(ctx)

	srv := api.New(config.ListenAddr, svc, config.StaticDir, logg)
	go func() {
		if err := srv.Start(); err != nil {
			logg.Error("http server failed", err)
			cancel()
		}
	}()

	logg.Info("fishbot is running", zap.String("addr", config.ListenAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown failed", err)
	}
}
