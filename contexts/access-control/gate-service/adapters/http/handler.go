package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/access-control/gate-service/application"
	httptransport "alumvote/contexts/access-control/gate-service/transport/http"
)

type Handler struct {
	Gates  application.Service
	Logger *slog.Logger
}

func (h Handler) StatusHandler(ctx context.Context) (httptransport.AccessStatusResponse, error) {
	statuses, err := h.Gates.Status(ctx)
	if err != nil {
		return httptransport.AccessStatusResponse{}, err
	}
	entries := make([]httptransport.GateStatusEntry, 0, len(statuses))
	for _, status := range statuses {
		entries = append(entries, httptransport.GateStatusEntry{
			Name:    status.Name,
			Version: status.Version,
		})
	}
	return httptransport.AccessStatusResponse{Gates: entries}, nil
}

func (h Handler) CheckHandler(ctx context.Context, req httptransport.AccessCheckRequest) (httptransport.AccessCheckResponse, error) {
	match, err := h.Gates.Check(ctx, req.Passcode)
	if err != nil {
		return httptransport.AccessCheckResponse{}, err
	}
	return httptransport.AccessCheckResponse{
		OK:      true,
		Name:    match.Name,
		Version: match.Version,
	}, nil
}

func (h Handler) RotateHandler(ctx context.Context, req httptransport.RotateGateRequest) (httptransport.GateStatusEntry, error) {
	status, err := h.Gates.Rotate(ctx, req.Name, req.NewPasscode)
	if err != nil {
		return httptransport.GateStatusEntry{}, err
	}
	return httptransport.GateStatusEntry{Name: status.Name, Version: status.Version}, nil
}
