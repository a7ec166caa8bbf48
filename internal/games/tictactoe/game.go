package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Registry IDs.
const (
	GameIDVsCPU = "tictactoe"
	GameIDPvP   = "tictactoe_pvp"
)

// Board geometry on screen.
const (
	cellW  = 7
	cellH  = 3
	boardW = cellW*3 + 2
	boardH = cellH*3 + 2

	minScreenW = boardW + 4
	minScreenH = boardH + 9

	messageTicks = 45
	blinkTicks   = 15
)

var (
	settingsMu sync.RWMutex
	activeCfg  = config.DefaultTicTacToeConfig()
	lowEndMode bool
)

// SetConfig sets the tuning used by games created or reset afterwards.
func SetConfig(cfg config.TicTacToeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	activeCfg = cfg
}

// SetLowEndMode turns off the blinking win line.
func SetLowEndMode(on bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	lowEndMode = on
}

func currentSettings() (config.TicTacToeConfig, bool) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return activeCfg, lowEndMode
}

// EngineFromConfig builds an engine with the configured depths, probability and jitter.
func EngineFromConfig(cfg config.EngineConfig, rng *rand.Rand) *Engine {
	return NewEngine(rng,
		WithMediumDepth(cfg.MediumDepth),
		WithHardDepth(cfg.HardDepth),
		WithSmartProbability(cfg.SmartProbability),
		WithJitter(cfg.Jitter),
	)
}

func init() {
	registry.Register(GameIDVsCPU, func() registry.Game { return New() })
	registry.Register(GameIDPvP, func() registry.Game { return NewPvP() })
}

// Game adapts a Session to the platform: cursor handling, the computer's
// thinking delay, outcome reporting and rendering.
type Game struct {
	id         string
	mode       Mode
	difficulty Difficulty // empty means take it from the config

	runtime core.RuntimeConfig
	cfg     config.TicTacToeConfig
	lowEnd  bool
	session *Session

	cursor   int
	tick     int
	cpuWait  int // ticks until the computer moves, -1 when not scheduled
	reported bool

	message      string
	messageTicks int
}

// New creates a game against the computer.
func New() *Game {
	return &Game{id: GameIDVsCPU, mode: ModeVsCPU, cpuWait: -1}
}

// NewPvP creates a two-player game.
func NewPvP() *Game {
	return &Game{id: GameIDPvP, mode: ModePvP, cpuWait: -1}
}

// NewWithDifficulty creates a game against the computer at a fixed difficulty,
// ignoring the configured one.
func NewWithDifficulty(d Difficulty) *Game {
	g := New()
	g.difficulty = d
	return g
}

// ID returns the registry ID.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePvP {
		return "Tic-Tac-Toe (Two Players)"
	}
	return "Tic-Tac-Toe vs CPU"
}

// Reset starts a new session: empty board and zeroed tally.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg, g.lowEnd = currentSettings()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := EngineFromConfig(g.cfg.Engine, rand.New(rand.NewSource(seed)))

	d := g.difficulty
	if d == "" {
		parsed, err := ParseDifficulty(g.cfg.Difficulty)
		if err != nil {
			parsed = DifficultyEasy
		}
		d = parsed
	}

	g.session = NewSession(engine, g.mode, d)
	g.tick = 0
	g.message = ""
	g.messageTicks = 0
	g.startRound()
}

func (g *Game) startRound() {
	g.cursor = 4
	g.cpuWait = -1
	g.reported = false
}

// Session exposes the underlying session.
func (g *Game) Session() *Session { return g.session }

// Step handles one tick of input and lets the computer move when its delay
// has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	switch {
	case in.Has(core.ActionResetAll):
		g.session.ResetAll()
		g.startRound()
	case in.Has(core.ActionRestart):
		g.session.NewRound()
		g.startRound()
	case in.Has(core.ActionUndo):
		if err := g.session.Undo(); err != nil {
			g.flash(err)
		}
		g.cpuWait = -1
		if !g.session.State().IsOver() {
			g.reported = false
		}
	default:
		g.moveCursor(in)
		g.handlePlace(in)
	}

	g.stepComputer()

	result := core.StepResult{State: g.State()}
	if g.session.State().IsOver() && !g.reported {
		g.reported = true
		result.Outcome = g.outcome()
	}
	return result
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)
}

func (g *Game) handlePlace(in core.InputFrame) {
	idx := -1
	switch {
	case in.HasCell():
		idx = in.Cell
		if idx >= 0 && idx < BoardSize {
			g.cursor = idx
		}
	case in.Has(core.ActionPlace):
		idx = g.cursor
	default:
		return
	}

	if _, err := g.session.Play(idx); err != nil {
		g.flash(err)
	}
}

func (g *Game) stepComputer() {
	if !g.session.ComputerTurn() {
		g.cpuWait = -1
		return
	}
	if g.cpuWait < 0 {
		g.cpuWait = g.delayTicks()
	}
	if g.cpuWait > 0 {
		g.cpuWait--
		return
	}

	g.cpuWait = -1
	if _, err := g.session.PlayComputer(); err != nil {
		g.flash(err)
	}
}

func (g *Game) delayTicks() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return g.cfg.CPUDelayMS * rate / 1000
}

func (g *Game) flash(err error) {
	switch {
	case errors.Is(err, ErrInvalidMove):
		g.message = "That cell is taken"
	case errors.Is(err, ErrGameOver):
		g.message = "Round over: press r for a new round"
	case errors.Is(err, ErrNoHistory):
		g.message = "Nothing to undo"
	case errors.Is(err, ErrNotYourTurn):
		g.message = "Wait for the computer"
	default:
		g.message = err.Error()
	}
	g.messageTicks = messageTicks
}

func (g *Game) outcome() *core.Outcome {
	st := g.session.State()
	out := &core.Outcome{
		GameID: g.id,
		Mode:   string(g.mode),
		Moves:  st.HistoryLen(),
	}
	if g.mode == ModeVsCPU {
		out.Difficulty = string(g.session.Difficulty())
	}
	if st.Status() == StatusWon {
		out.Winner = st.Winner().String()
	}
	return out
}

// State reports whether the round is over and whether the computer is thinking.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		GameOver: g.session.State().IsOver(),
		Busy:     g.session.ComputerTurn(),
	}
}

// Render draws title, status, board, tally and key help.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCenteredWithColor(dst.Height()/2, "Terminal too small", core.ColorAlert)
		dst.DrawTextCenteredWithColor(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorMuted)
		return
	}

	top := (dst.Height() - minScreenH) / 2
	dst.DrawTextCenteredWithColor(top, g.Title(), core.ColorTitle)
	dst.DrawTextCenteredWithColor(top+2, g.statusLine(), g.statusColor())

	board := dst.Bounds().Centered(boardW, boardH)
	board.Y = top + 4
	g.renderBoard(dst, board)

	dst.DrawTextCenteredWithColor(board.Bottom()+1, g.tallyLine(), core.ColorDefault)
	if g.message != "" {
		dst.DrawTextCenteredWithColor(board.Bottom()+2, g.message, core.ColorAlert)
	}
	dst.DrawTextCenteredWithColor(board.Bottom()+3, "1-9 or arrows+space: place   u: undo", core.ColorMuted)
	dst.DrawTextCenteredWithColor(board.Bottom()+4, "r: new round   x: reset scores   esc: back   q: quit", core.ColorMuted)
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	st := g.session.State()
	b := st.Board()
	line, hasLine := st.WinningLine()

	onLine := func(idx int) bool {
		if !hasLine {
			return false
		}
		return idx == line[0] || idx == line[1] || idx == line[2]
	}
	highlight := g.lowEnd || (g.tick/blinkTicks)%2 == 0

	// Grid
	for i := 1; i < 3; i++ {
		y := r.Y + i*(cellH+1) - 1
		dst.DrawHLine(r.X, y, boardW, '─', core.ColorGrid)
		x := r.X + i*(cellW+1) - 1
		for yy := r.Y; yy < r.Bottom(); yy++ {
			ch := '│'
			if (yy-r.Y+1)%(cellH+1) == 0 {
				ch = '┼'
			}
			dst.SetWithColor(x, yy, ch, core.ColorGrid)
		}
	}

	for idx := range b {
		cx := r.X + (idx%3)*(cellW+1) + cellW/2
		cy := r.Y + (idx/3)*(cellH+1) + cellH/2

		switch b[idx] {
		case X, O:
			c := core.ColorMarkX
			if b[idx] == O {
				c = core.ColorMarkO
			}
			if onLine(idx) && highlight {
				c = core.ColorWinLine
			}
			dst.SetWithColor(cx, cy, rune(b[idx].String()[0]), c)
		default:
			if !st.IsOver() {
				dst.SetWithColor(cx, cy, rune('1'+idx), core.ColorMuted)
			}
		}

		if idx == g.cursor && !st.IsOver() && !g.session.ComputerTurn() {
			dst.SetWithColor(cx-2, cy, '[', core.ColorCursor)
			dst.SetWithColor(cx+2, cy, ']', core.ColorCursor)
		}
	}
}

func (g *Game) statusLine() string {
	st := g.session.State()
	switch st.Status() {
	case StatusWon:
		if g.mode == ModeVsCPU {
			if st.Winner() == ComputerMark {
				return "Computer wins!"
			}
			return "You win!"
		}
		return fmt.Sprintf("%s wins!", st.Winner())
	case StatusDrawn:
		return "It's a draw"
	}

	if g.mode == ModeVsCPU {
		if g.session.ComputerTurn() {
			return fmt.Sprintf("Computer is thinking... (%s)", g.session.Difficulty().Title())
		}
		return fmt.Sprintf("Your move (%s)", st.Current())
	}
	return fmt.Sprintf("%s to move", st.Current())
}

func (g *Game) statusColor() core.Color {
	st := g.session.State()
	switch {
	case st.Status() == StatusWon:
		return core.ColorWinLine
	case st.Status() == StatusDrawn:
		return core.ColorMuted
	case st.Current() == X:
		return core.ColorMarkX
	default:
		return core.ColorMarkO
	}
}

func (g *Game) tallyLine() string {
	t := g.session.Tally()
	if g.mode == ModeVsCPU {
		return fmt.Sprintf("You %d   CPU %d   Ties %d", t.X, t.O, t.Ties)
	}
	return fmt.Sprintf("X %d   O %d   Ties %d", t.X, t.O, t.Ties)
}
