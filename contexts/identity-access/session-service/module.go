package sessionservice

import (
	"log/slog"
	"time"

	httpadapter "alumvote/contexts/identity-access/session-service/adapters/http"
	"alumvote/contexts/identity-access/session-service/adapters/memory"
	"alumvote/contexts/identity-access/session-service/adapters/security"
	"alumvote/contexts/identity-access/session-service/application"
	"alumvote/contexts/identity-access/session-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Voters         ports.VoterRepository
	Admins         ports.AdminRepository
	Hasher         ports.CredentialHasher
	Tokens         ports.AdminTokenCodec
	Secrets        ports.SecretSource
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	Notifications  ports.NotificationWriter
	DefaultChapter string
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Voters:         deps.Voters,
		Admins:         deps.Admins,
		Hasher:         deps.Hasher,
		Tokens:         deps.Tokens,
		Secrets:        deps.Secrets,
		Clock:          deps.Clock,
		IDGen:          deps.IDGen,
		Notifications:  deps.Notifications,
		DefaultChapter: deps.DefaultChapter,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Sessions: service,
			Logger:   deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Voters:  store,
		Admins:  store,
		Hasher:  security.NewBcryptHasher(bcryptTestCost),
		Tokens:  security.NewJWTAdminTokenCodec("in-memory-secret", 12*time.Hour),
		Secrets: security.RandomSecretSource{},
		Clock:   memory.SystemClock{},
		IDGen:   memory.UUIDGenerator{},
		Logger:  logger,
	})
	module.Store = store
	return module
}

// Minimum bcrypt cost keeps in-memory wiring fast enough for tests.
const bcryptTestCost = 4
