package electionservice

import (
	"log/slog"
	"time"

	httpadapter "alumvote/contexts/election-operations/election-service/adapters/http"
	"alumvote/contexts/election-operations/election-service/adapters/memory"
	"alumvote/contexts/election-operations/election-service/application"
	"alumvote/contexts/election-operations/election-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Elections   ports.ElectionRepository
	Positions   ports.PositionRepository
	Reminders   ports.ReminderRepository
	Tallies     ports.TallyReader
	Turnout     ports.TurnoutReader
	Ballots     ports.BallotPurger
	Nominations ports.NominationPurger
	Voters      ports.VoterResetter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Location    *time.Location
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Elections:   deps.Elections,
		Positions:   deps.Positions,
		Reminders:   deps.Reminders,
		Tallies:     deps.Tallies,
		Turnout:     deps.Turnout,
		Ballots:     deps.Ballots,
		Nominations: deps.Nominations,
		Voters:      deps.Voters,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Location:    deps.Location,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Elections: service,
			Logger:    deps.Logger,
		},
		Service: service,
	}
}

// CrossContext carries the ports served by other contexts. Nil members
// fall back to unwired stubs so a partial in-memory setup still works.
type CrossContext struct {
	Tallies     ports.TallyReader
	Turnout     ports.TurnoutReader
	Ballots     ports.BallotPurger
	Nominations ports.NominationPurger
	Voters      ports.VoterResetter
}

func NewInMemoryModule(logger *slog.Logger, cross CrossContext) Module {
	store := memory.NewStore()
	unwired := memory.Unwired{}
	if cross.Tallies == nil {
		cross.Tallies = unwired
	}
	if cross.Turnout == nil {
		cross.Turnout = unwired
	}
	if cross.Ballots == nil {
		cross.Ballots = unwired
	}
	if cross.Nominations == nil {
		cross.Nominations = unwired
	}
	if cross.Voters == nil {
		cross.Voters = unwired
	}
	module := NewModule(Dependencies{
		Elections:   store,
		Positions:   store,
		Reminders:   store,
		Tallies:     cross.Tallies,
		Turnout:     cross.Turnout,
		Ballots:     cross.Ballots,
		Nominations: cross.Nominations,
		Voters:      cross.Voters,
		Clock:       memory.SystemClock{},
		IDGen:       memory.UUIDGenerator{},
		Location:    time.UTC,
		Logger:      logger,
	})
	module.Store = store
	return module
}
