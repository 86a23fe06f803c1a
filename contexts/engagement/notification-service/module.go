package notificationservice

import (
	"log/slog"

	httpadapter "alumvote/contexts/engagement/notification-service/adapters/http"
	"alumvote/contexts/engagement/notification-service/adapters/memory"
	"alumvote/contexts/engagement/notification-service/application"
	"alumvote/contexts/engagement/notification-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Notifications ports.NotificationRepository
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Notifications: deps.Notifications,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Notifications: service,
			Logger:        deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Notifications: store,
		Clock:         memory.SystemClock{},
		IDGen:         memory.UUIDGenerator{},
		Logger:        logger,
	})
	module.Store = store
	return module
}
