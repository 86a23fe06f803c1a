package gateservice

import (
	"log/slog"

	httpadapter "alumvote/contexts/access-control/gate-service/adapters/http"
	"alumvote/contexts/access-control/gate-service/adapters/memory"
	"alumvote/contexts/access-control/gate-service/adapters/security"
	"alumvote/contexts/access-control/gate-service/application"
	"alumvote/contexts/access-control/gate-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Gates           ports.GateRepository
	Hasher          ports.PasscodeHasher
	Clock           ports.Clock
	IDGen           ports.IDGenerator
	DefaultName     string
	DefaultPasscode string
	Logger          *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Gates:           deps.Gates,
		Hasher:          deps.Hasher,
		Clock:           deps.Clock,
		IDGen:           deps.IDGen,
		DefaultName:     deps.DefaultName,
		DefaultPasscode: deps.DefaultPasscode,
		Logger:          deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Gates:  service,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Gates:           store,
		Hasher:          security.NewBcryptHasher(bcryptTestCost),
		Clock:           memory.SystemClock{},
		IDGen:           memory.UUIDGenerator{},
		DefaultName:     "default",
		DefaultPasscode: "demo-passcode",
		Logger:          logger,
	})
	module.Store = store
	return module
}

// Minimum bcrypt cost keeps in-memory wiring fast enough for tests.
const bcryptTestCost = 4
