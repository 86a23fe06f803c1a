package ballotservice

import (
	"log/slog"

	httpadapter "alumvote/contexts/election-operations/ballot-service/adapters/http"
	"alumvote/contexts/election-operations/ballot-service/adapters/memory"
	"alumvote/contexts/election-operations/ballot-service/application"
	"alumvote/contexts/election-operations/ballot-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Votes      ports.VoteRepository
	Elections  ports.ElectionReader
	Positions  ports.PositionReader
	Candidates ports.CandidateReader
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Votes:      deps.Votes,
		Elections:  deps.Elections,
		Positions:  deps.Positions,
		Candidates: deps.Candidates,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Ballots: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the in-memory vote store with the caller's
// election, position, and candidate readers from the election context.
func NewInMemoryModule(logger *slog.Logger, elections ports.ElectionReader, positions ports.PositionReader, candidates ports.CandidateReader) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Votes:      store,
		Elections:  elections,
		Positions:  positions,
		Candidates: candidates,
		Clock:      memory.SystemClock{},
		IDGen:      memory.UUIDGenerator{},
		Logger:     logger,
	})
	module.Store = store
	return module
}
