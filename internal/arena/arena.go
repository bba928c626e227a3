// Package arena plays seeded matches between four agents and aggregates payoffs.
package arena

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/maria/internal/agent"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/logger"
	"github.com/palemoky/maria/internal/storage"
)

// maxSteps guards against an engine that never reaches a terminal state
const maxSteps = 1_000_000

// Recorder persists finished matches and per-agent results
type Recorder interface {
	SaveMatch(ctx context.Context, match *storage.MatchRecord) error
	RecordResult(ctx context.Context, outcome storage.GameOutcome) error
}

// Options controls a run
type Options struct {
	Games         int
	Seed          uint64 // base seed, match i uses Seed+i; 0 derives from time
	AllowStepBack bool
}

// Result aggregates payoffs per seat over a run
type Result struct {
	Games          int
	Agents         [player.NumSeats]string
	TotalPayoffs   [player.NumSeats]int
	AveragePayoffs [player.NumSeats]float64
	Wins           [player.NumSeats]int
	MoonShots      [player.NumSeats]int
	Rounds         int
	MatchIDs       []string
}

// Arena runs matches between a fixed seating of agents
type Arena struct {
	agents   [player.NumSeats]agent.Agent
	recorder Recorder
	opts     Options
}

// New creates an arena; recorder may be nil
func New(agents []agent.Agent, recorder Recorder, opts Options) (*Arena, error) {
	if len(agents) != player.NumSeats {
		return nil, fmt.Errorf("need %d agents, got %d", player.NumSeats, len(agents))
	}
	if opts.Games < 0 {
		return nil, fmt.Errorf("invalid game count: %d", opts.Games)
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	a := &Arena{recorder: recorder, opts: opts}
	for i, ag := range agents {
		if ag == nil {
			return nil, fmt.Errorf("agent at seat %s is nil", player.Seat(i))
		}
		a.agents[i] = ag
	}
	return a, nil
}

// Names returns the agent names by seat
func (a *Arena) Names() [player.NumSeats]string {
	var names [player.NumSeats]string
	for i, ag := range a.agents {
		names[i] = ag.Name()
	}
	return names
}

// Run plays Options.Games matches and returns the aggregated payoffs
func (a *Arena) Run(ctx context.Context) (*Result, error) {
	result := &Result{Agents: a.Names()}
	for i := range a.opts.Games {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		match, err := a.PlayMatch(ctx, a.opts.Seed+uint64(i))
		if err != nil {
			return result, fmt.Errorf("match %d: %w", i, err)
		}

		result.Games++
		result.Rounds += len(match.Rounds)
		result.MatchIDs = append(result.MatchIDs, match.ID)
		for seat, s := range match.Scores {
			result.TotalPayoffs[seat] += s
		}
		for _, seat := range match.Winners() {
			result.Wins[seat]++
		}
		for _, r := range match.Rounds {
			for _, seat := range r.ShotMoon {
				result.MoonShots[seat]++
			}
		}

		a.record(ctx, match)
	}

	if result.Games > 0 {
		for seat, total := range result.TotalPayoffs {
			result.AveragePayoffs[seat] = float64(total) / float64(result.Games)
		}
	}
	logger.LogInfo("arena finished: games=%d agents=%v average=%v", result.Games, result.Agents, result.AveragePayoffs)
	return result, nil
}

// PlayMatch plays a single match to the terminal state
func (a *Arena) PlayMatch(ctx context.Context, seed uint64) (*storage.MatchRecord, error) {
	match := &storage.MatchRecord{
		ID:        uuid.NewString(),
		Seed:      seed,
		Agents:    a.Names(),
		StartedAt: time.Now().Unix(),
	}

	g := game.New(game.Options{Seed: seed, AllowStepBack: a.opts.AllowStepBack})
	_, seat, err := g.Start()
	if err != nil {
		return nil, err
	}
	logger.LogDebug("match %s started: seed=%d dealer=%s", match.ID, seed, g.Round().DealerSeat())

	for steps := 0; !g.IsTerminal(); steps++ {
		if steps >= maxSteps {
			return nil, errors.New("match did not terminate")
		}
		if steps%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		view, err := g.State(seat)
		if err != nil {
			return nil, err
		}
		act, err := a.agents[seat].Step(view)
		if err != nil {
			return nil, fmt.Errorf("%s at seat %s: %w", a.agents[seat].Name(), seat, err)
		}

		roundNumber := g.RoundNumber()
		_, next, err := g.Apply(act)
		if err != nil {
			return nil, fmt.Errorf("%s at seat %s played %s %s: %w", a.agents[seat].Name(), seat, act.Kind, act, err)
		}
		seat = next
		if g.RoundNumber() != roundNumber || g.IsTerminal() {
			results := g.Results()
			last := results[len(results)-1]
			logger.LogDebug("match %s round %d finished: points=%v scores=%v moon=%v",
				match.ID, last.Number, last.Points, last.Scores, last.ShotMoon)
		}
	}

	match.Scores = g.Payoffs()
	for _, r := range g.Results() {
		rec, err := storage.NewRoundRecord(r)
		if err != nil {
			return nil, err
		}
		match.Rounds = append(match.Rounds, rec)
	}
	match.FinishedAt = time.Now().Unix()
	logger.LogDebug("match %s finished: rounds=%d scores=%v", match.ID, len(match.Rounds), match.Scores)
	return match, nil
}

// record failures are logged and do not stop the run
func (a *Arena) record(ctx context.Context, match *storage.MatchRecord) {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.SaveMatch(ctx, match); err != nil {
		logger.LogError("save match %s: %v", match.ID, err)
	}

	winners := match.Winners()
	for seat, name := range match.Agents {
		outcome := storage.GameOutcome{
			Agent:  name,
			Payoff: match.Scores[seat],
			Won:    slices.Contains(winners, player.Seat(seat)),
		}
		for _, r := range match.Rounds {
			for _, s := range r.ShotMoon {
				if s == seat {
					outcome.MoonShots++
				}
			}
		}
		if err := a.recorder.RecordResult(ctx, outcome); err != nil {
			logger.LogError("record result for %s: %v", name, err)
		}
	}
}
