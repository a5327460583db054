// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/unitracker/handlers"
	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/notify"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/session"
	"github.com/danielhkuo/unitracker/tiles"
	"github.com/danielhkuo/unitracker/viewport"
)

// Deps carries everything the route table needs.
type Deps struct {
	Registry      *pins.Registry
	Controller    *session.Controller
	Provider      *location.Provider
	View          *viewport.Viewport
	Feed          *notify.Feed
	TileCache     *tiles.Cache
	LocateTimeout time.Duration
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pinHandler := handlers.NewPinHandler(d.Registry, d.Controller)
	sessionHandler := handlers.NewSessionHandler(d.Controller)
	locationHandler := handlers.NewLocationHandler(d.Provider, d.View, d.LocateTimeout)
	notificationHandler := handlers.NewNotificationHandler(d.Feed)
	tileHandler := handlers.NewTileHandler(d.TileCache)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pins
	mux.HandleFunc("GET /pins", middleware.WithLogging(pinHandler.List))
	mux.HandleFunc("POST /pins", middleware.WithLogging(pinHandler.Create))
	mux.HandleFunc("DELETE /pins/{id}", middleware.WithLogging(pinHandler.Delete))
	mux.HandleFunc("POST /pins/{id}/select", middleware.WithLogging(pinHandler.Select))

	// Interaction session
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("POST /session/add-mode", middleware.WithLogging(sessionHandler.ToggleAddMode))
	mux.HandleFunc("POST /session/map-click", middleware.WithLogging(sessionHandler.MapClick))
	mux.HandleFunc("POST /session/quick-capture", middleware.WithLogging(sessionHandler.QuickCapture))
	mux.HandleFunc("POST /session/commit", middleware.WithLogging(sessionHandler.Commit))
	mux.HandleFunc("POST /session/cancel", middleware.WithLogging(sessionHandler.Cancel))

	// Device location reporting
	mux.HandleFunc("POST /location/fix", middleware.WithLogging(locationHandler.ReportFix))
	mux.HandleFunc("POST /location/failure", middleware.WithLogging(locationHandler.ReportFailure))
	mux.HandleFunc("GET /location/current", middleware.WithLogging(locationHandler.Current))
	mux.HandleFunc("POST /location/locate", middleware.WithLogging(locationHandler.Locate))

	// Notifications
	mux.HandleFunc("GET /notifications", middleware.WithLogging(notificationHandler.Drain))

	// Map tiles (not wrapped with logging; tile traffic would drown the log)
	mux.HandleFunc("GET /tiles/{z}/{x}/{y}", tileHandler.Get)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unitracker API v1"))
	})

	return mux
}
