package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-petri/internal/config"
	"github.com/vovakirdan/tui-petri/internal/core"
	"github.com/vovakirdan/tui-petri/internal/describe"
)

// Caption placeholder texts. The pending text mirrors the error text's
// timer semantics: both are ordinary captions with short timers.
const (
	pendingCaptionText = "thinking..."
	errorCaptionText   = "no comment :("
)

// DefaultCellName is used when the player does not supply a name.
const DefaultCellName = "MyCell"

// captionResult is delivered by the caption goroutine back to the
// simulation loop.
type captionResult struct {
	gen  int
	text string
	err  error
}

// Game runs the petri simulation. All state is mutated exclusively from
// Step, on a single goroutine; the only concurrency is the caption request,
// which communicates back through a buffered channel polled once per tick.
type Game struct {
	rules     config.Rules
	cfg       core.RuntimeConfig
	dt        float64 // Seconds per tick
	rng       *rand.Rand
	tick      uint64
	cellName  string
	describer describe.Describer

	world  *World
	cell   *Cell
	camera Camera

	captionGen int
	inFlight   bool
	results    chan captionResult
}

// New creates a game with the given rules. The describer may be nil, in
// which case the describe action is a no-op.
func New(rules config.Rules, cellName string, d describe.Describer) *Game {
	if cellName == "" {
		cellName = DefaultCellName
	}
	return &Game{
		rules:     rules,
		cellName:  cellName,
		describer: d,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "petri"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Petri"
}

// CellName returns the player cell's display name.
func (g *Game) CellName() string {
	return g.cellName
}

// HasDescriber reports whether the caption capability is configured.
func (g *Game) HasDescriber() bool {
	return g.describer != nil
}

// Reset initializes or restarts the simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.cfg = cfg
	g.dt = 1.0 / float64(cfg.TickRate)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	bounds := core.NewBounds(g.rules.World.Width, g.rules.World.Height)
	g.world = NewWorld(g.rng, bounds, g.rules.Food.Radius)
	g.world.SpawnFood(g.rules.World.FoodCount)

	g.cell = NewCell(g.cellName, core.RandomCellColor(g.rng), g.rules.Cell)

	g.camera = NewCamera(cfg.ScreenW, cfg.ScreenH)
	g.camera.Follow(g.cell.Pos, bounds)

	// Invalidate any outstanding caption request from a previous run. The
	// old goroutine still holds the old channel, so its result can never
	// reach this run; the generation bump guards the same-channel paths.
	g.captionGen++
	g.inFlight = false
	g.results = make(chan captionResult, 1)
}

// Resize adjusts the camera viewport to a new terminal size without
// disturbing the simulation.
func (g *Game) Resize(cols, rows int) {
	g.cfg.ScreenW = cols
	g.cfg.ScreenH = rows
	g.camera.Resize(cols, rows)
	g.camera.Follow(g.cell.Pos, g.world.Bounds)
}

// Step advances the simulation by one tick. The order is load-bearing:
// movement precedes consumption so collision tests use the post-move
// position, and the camera re-centers on the post-move position so the next
// frame's pointer translation stays consistent with what was rendered.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.PointerSeen {
		target := g.camera.ScreenToWorld(in.PointerX, in.PointerY)
		g.cell.SetTarget(target.X, target.Y)
	}

	g.cell.Advance(g.world.Bounds)
	g.camera.Follow(g.cell.Pos, g.world.Bounds)

	consumed := g.world.ResolveConsumption(g.cell)

	if in.Has(core.ActionDescribe) {
		g.requestCaption()
	}
	g.pollCaption()
	g.cell.Caption.Tick(g.dt)

	return core.StepResult{State: g.State(), Consumed: consumed}
}

// requestCaption launches an asynchronous caption request. At most one
// request is in flight at a time; triggers while one is outstanding are
// ignored. A nil describer makes this a no-op.
func (g *Game) requestCaption() {
	if g.describer == nil || g.inFlight {
		return
	}

	g.inFlight = true
	g.captionGen++
	gen := g.captionGen

	g.cell.Caption.Set(pendingCaptionText, g.rules.Caption.PendingSeconds)

	req := describe.Request{
		Color: g.cell.Color.String(),
		Mass:  g.cell.Mass,
	}
	timeout := time.Duration(g.rules.Caption.TimeoutSeconds * float64(time.Second))
	d := g.describer
	results := g.results

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		text, err := d.Describe(ctx, req)
		// Buffered channel and single-in-flight guarantee this never blocks.
		results <- captionResult{gen: gen, text: text, err: err}
	}()
}

// pollCaption drains at most one completed caption result per tick. Stale
// results, tagged with an older generation, are dropped so they never
// overwrite a newer caption.
func (g *Game) pollCaption() {
	select {
	case res := <-g.results:
		g.inFlight = false
		if res.gen != g.captionGen {
			return
		}
		if res.err != nil {
			g.cell.Caption.Set(errorCaptionText, g.rules.Caption.ErrorSeconds)
			return
		}
		g.cell.Caption.Set(res.text, g.rules.Caption.Seconds)
	default:
	}
}

// CaptionInFlight reports whether a caption request is outstanding.
func (g *Game) CaptionInFlight() bool {
	return g.inFlight
}

// State returns the current simulation status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mass:  g.cell.Mass,
		Score: int(g.cell.Mass),
	}
}
