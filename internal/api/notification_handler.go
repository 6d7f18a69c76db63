package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api/shared"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/platform/logger"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/solid/dip"
)

// NotificationHandler serves POST /api/notifications. It talks to the
// notification service purely through its channel-dispatch API; the
// concrete senders are wired in at startup.
type NotificationHandler struct {
	notificationService *dip.NotificationService
	validate            *validator.Validate
	logger              *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *dip.NotificationService, baseLogger *slog.Logger) *NotificationHandler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return &NotificationHandler{
		notificationService: notificationService,
		validate:            validator.New(),
		logger:              baseLogger.With(slog.String("component", "notification_handler")),
	}
}

// Send handles POST /api/notifications.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req NotificationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid notification request", err)
		return
	}

	receipt, err := h.notificationService.Notify(ctx, req.Channel, req.Recipient, req.Message)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.InfoContext(ctx, "notification sent",
		slog.String("channel", receipt.Channel),
		slog.String("receipt_id", receipt.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusAccepted, receipt)
}
