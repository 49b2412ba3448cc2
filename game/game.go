package game

import (
	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Outcome tells the caller what a tick did
type Outcome int

const (
	Moved Outcome = iota
	AteApple
	Collided
)

func (o Outcome) String() string {
	switch o {
	case AteApple:
		return "ate apple"
	case Collided:
		return "collided"
	default:
		return "moved"
	}
}

// Game composes one snake and one apple on a toroidal grid. It holds no I/O
// handles and must be driven from a single goroutine.
type Game struct {
	UUID  string
	Grid  types.Grid
	snake *entity.Snake
	apple *entity.Apple
	rng   manager.RandomSource

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
}

// Option customizes a Game at construction time
type Option func(*Game)

// WithRandom injects the random source used for apple placement and the
// heading of a fresh snake.
func WithRandom(src manager.RandomSource) Option {
	return func(g *Game) {
		g.rng = src
	}
}

func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	grid := cfg.Grid()
	game := &Game{
		UUID: uuid.New().String(),
		Grid: grid,
	}
	for _, opt := range opts {
		opt(game)
	}
	if game.rng == nil {
		game.rng = rand.New(rand.NewSource(cfg.seed()))
	}

	game.foodMgr = manager.NewFoodManager(grid, game.rng)
	game.collisionMgr = manager.NewCollisionManager(grid)
	game.stateMgr = manager.NewStateManager()
	game.snake = entity.NewSnake(grid, game.randomDirection())
	game.apple = entity.NewApple(types.Point{})

	if err := game.placeApple(); err != nil {
		return nil, err
	}
	return game, nil
}

// Step advances the simulation by one tick. A valid intent is applied as a
// turn request before moving; types.None leaves the heading alone. The only
// error is a wrapped manager.ErrGridFull when no cell is left for the apple.
func (g *Game) Step(intent types.Direction) (Outcome, error) {
	if intent != types.None {
		g.snake.RequestTurn(intent)
	}
	g.snake.Advance()
	g.stateMgr.RecordTick(g.snake.Len())

	switch g.collisionMgr.Resolve(g.snake, g.apple) {
	case manager.SelfCollision:
		return Collided, g.Reset()
	case manager.FoodCollision:
		g.snake.Grow()
		g.stateMgr.RecordApple()
		return AteApple, g.placeApple()
	}
	return Moved, nil
}

// Reset starts a new run on the same Game: single-cell snake at the center,
// random heading, relocated apple.
func (g *Game) Reset() error {
	g.snake.Reset(g.randomDirection())
	g.stateMgr.RecordReset()
	return g.placeApple()
}

func (g *Game) placeApple() error {
	pos, err := g.foodMgr.Place(g.snake.Occupied())
	if err != nil {
		return errors.Wrap(err, "relocate apple")
	}
	if !g.collisionMgr.ValidateSpawnPosition(pos, g.snake) {
		return errors.Errorf("apple placed on occupied cell %v", pos)
	}
	g.apple.Position = pos
	return nil
}

func (g *Game) randomDirection() types.Direction {
	return types.Directions[g.rng.Intn(len(types.Directions))]
}

// SnakePositions returns the body head first. The slice is a copy.
func (g *Game) SnakePositions() []types.Point {
	return g.snake.Body()
}

func (g *Game) ApplePosition() types.Point {
	return g.apple.Position
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction()
}

// Snake exposes the snake for read-only consumers such as renderers and the
// autopilot. Callers must not mutate it.
func (g *Game) Snake() *entity.Snake {
	return g.snake
}

// Apple returns a copy of the apple.
func (g *Game) Apple() entity.Apple {
	return *g.apple
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}
