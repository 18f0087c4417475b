// Package advisor exposes the Monte-Carlo best-move estimate as a gRPC service.
package advisor

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/montecarlo"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/ai/random"
	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Server implements AdvisorServer. Each request gets its own strategy seeded
// from the server's source, so concurrent calls never share an rng.
type Server struct {
	limits montecarlo.Config
	fleet  []int
	logger zerolog.Logger

	mu   sync.Mutex
	seed *rand.Rand
}

// NewServer creates an advisor. limits holds the default and the maximum
// simulation counts a request may ask for; fleet is used when a request has
// none.
func NewServer(limits montecarlo.Config, fleet []int, seed int64, logger zerolog.Logger) (*Server, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if fleet == nil {
		fleet = core.DefaultFleet()
	}
	if err := core.ValidateFleet(fleet); err != nil {
		return nil, err
	}
	return &Server{
		limits: limits,
		fleet:  append([]int(nil), fleet...),
		logger: logger.With().Str("component", "AdvisorServer").Logger(),
		seed:   rand.New(rand.NewSource(seed)),
	}, nil
}

// BestMove handles battleship.v1.Advisor/BestMove
func (s *Server) BestMove(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeRequest(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	cfg := s.effectiveConfig(req)
	fleet := req.Fleet
	if fleet == nil {
		fleet = s.fleet
	}

	rng := s.newRNG()
	strategy := montecarlo.NewStrategy(cfg, rng, s.logger)

	cell, count, err := strategy.DetermineBestMove(ctx, req.Board, fleet)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrEmptyTally):
		cell, err = random.PickUnshot(rng, req.Board)
		if err != nil {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		count = 0
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, status.FromContextError(err).Err()
	default:
		s.logger.Error().Err(err).Msg("Best move estimate failed")
		return nil, status.Errorf(codes.Internal, "estimate failed: %v", err)
	}

	s.logger.Debug().
		Stringer("cell", cell).
		Int("max_count", count).
		Int("simulations", cfg.Simulations).
		Int("shots_per_simulation", cfg.ShotsPerSimulation).
		Msg("Best move")

	return EncodeResponse(BestMoveResponse{Cell: cell, MaxCount: count}), nil
}

// effectiveConfig applies request overrides, capped at the server limits
func (s *Server) effectiveConfig(req BestMoveRequest) montecarlo.Config {
	cfg := s.limits
	if req.Simulations > 0 && req.Simulations < cfg.Simulations {
		cfg.Simulations = req.Simulations
	}
	if req.ShotsPerSimulation > 0 && req.ShotsPerSimulation < cfg.ShotsPerSimulation {
		cfg.ShotsPerSimulation = req.ShotsPerSimulation
	}
	return cfg
}

func (s *Server) newRNG() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.seed.Int63()))
}
