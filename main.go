package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/unitracker/cliparse"
	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/notify"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/router"
	"github.com/danielhkuo/unitracker/session"
	"github.com/danielhkuo/unitracker/store"
	"github.com/danielhkuo/unitracker/tiles"
	"github.com/danielhkuo/unitracker/viewport"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load persisted pins
	st := store.New(cfg.DataFile)
	initial := st.Load()
	slog.Info("Pin data loaded", "count", len(initial), "file", cfg.DataFile)

	// Open the tile cache
	tileDB, err := tiles.Open(cfg.TileCachePath)
	if err != nil {
		slog.Error("tile cache open failed", "error", err)
		os.Exit(1)
	}
	defer tileDB.Close()
	tileCache := tiles.New(tileDB, cfg.TileURLTemplate, time.Duration(cfg.TileTimeoutMs)*time.Millisecond)

	// Wire the core
	feed := notify.NewFeed()
	registry := pins.NewRegistry(st, initial, feed)
	provider := location.NewProvider()
	view := viewport.New()
	controller := session.New(registry, provider, view, feed)

	// The viewport follows the continuous position watch; the subscription
	// is canceled exactly once on shutdown.
	sub := provider.Watch()
	go func() {
		for coord := range sub.C {
			view.FollowLive(coord)
		}
	}()
	defer sub.Cancel()

	// Create router
	mux := router.NewRouter(router.Deps{
		Registry:      registry,
		Controller:    controller,
		Provider:      provider,
		View:          view,
		Feed:          feed,
		TileCache:     tileCache,
		LocateTimeout: time.Duration(cfg.LocateTimeoutMs) * time.Millisecond,
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
