// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/notify"
)

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Drain handles GET /notifications
// Returns and clears pending notices; the frontend shows them as toasts.
func (h *NotificationHandler) Drain(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.NotificationsResponse{
		Notices: h.feed.Drain(),
	})
}
