package nominationservice

import (
	"log/slog"

	httpadapter "alumvote/contexts/election-operations/nomination-service/adapters/http"
	"alumvote/contexts/election-operations/nomination-service/adapters/memory"
	"alumvote/contexts/election-operations/nomination-service/application"
	"alumvote/contexts/election-operations/nomination-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Nominations   ports.NominationRepository
	Candidates    ports.CandidateRepository
	Elections     ports.ElectionReader
	Positions     ports.PositionReader
	Notifications ports.NotificationWriter
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Nominations:   deps.Nominations,
		Candidates:    deps.Candidates,
		Elections:     deps.Elections,
		Positions:     deps.Positions,
		Notifications: deps.Notifications,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Nominations: service,
			Logger:      deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the in-memory store with the caller's election
// and position readers, which live in another context.
func NewInMemoryModule(logger *slog.Logger, elections ports.ElectionReader, positions ports.PositionReader, notifications ports.NotificationWriter) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Nominations:   store,
		Candidates:    store,
		Elections:     elections,
		Positions:     positions,
		Notifications: notifications,
		Clock:         memory.SystemClock{},
		IDGen:         memory.UUIDGenerator{},
		Logger:        logger,
	})
	module.Store = store
	return module
}
