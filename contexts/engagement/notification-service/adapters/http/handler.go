package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/engagement/notification-service/application"
	"alumvote/contexts/engagement/notification-service/domain/entities"
	httptransport "alumvote/contexts/engagement/notification-service/transport/http"
)

type Handler struct {
	Notifications application.Service
	Logger        *slog.Logger
}

func (h Handler) InboxHandler(ctx context.Context, scope string, history bool) (httptransport.InboxResponse, error) {
	inbox, err := h.Notifications.ReadInbox(ctx, scope, history)
	if err != nil {
		return httptransport.InboxResponse{}, err
	}
	payloads := make([]httptransport.NotificationPayload, 0, len(inbox.Notifications))
	for _, notification := range inbox.Notifications {
		payloads = append(payloads, toPayload(notification))
	}
	return httptransport.InboxResponse{Notifications: payloads, Unread: inbox.Unread}, nil
}

func (h Handler) ActionHandler(ctx context.Context, scope string, req httptransport.NotificationActionRequest) (httptransport.NotificationActionResponse, error) {
	affected, err := h.Notifications.Act(ctx, scope, req.Action, req.ID)
	if err != nil {
		return httptransport.NotificationActionResponse{}, err
	}
	return httptransport.NotificationActionResponse{OK: true, Affected: affected}, nil
}

func (h Handler) AppendHandler(ctx context.Context, req httptransport.AppendNotificationRequest) (httptransport.NotificationPayload, error) {
	notification, err := h.Notifications.Append(ctx, application.AppendInput{
		Type:    req.Type,
		Message: req.Message,
		VoterID: req.VoterID,
	})
	if err != nil {
		return httptransport.NotificationPayload{}, err
	}
	return toPayload(notification), nil
}

func toPayload(notification entities.Notification) httptransport.NotificationPayload {
	return httptransport.NotificationPayload{
		ID:        notification.ID,
		Type:      notification.Type,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		IsHidden:  notification.IsHidden,
		CreatedAt: notification.CreatedAt,
	}
}
