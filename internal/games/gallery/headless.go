package gallery

import "github.com/vovakirdan/prism-arcade/internal/core"

// Autopilot scripts player input for headless runs. The same autopilot,
// seed and screen size always produce the same game.
type Autopilot struct {
	FireEvery  int // Ticks between fire presses; 0 never fires
	SweepTicks int // Ticks spent moving in one direction; 0 stands still
	MagnetAt   int // Tick at which to press the magnet; 0 never does
}

// DefaultAutopilot fires four times a second and sweeps the paddle across
// the field.
func DefaultAutopilot() Autopilot {
	return Autopilot{FireEvery: 15, SweepTicks: 90}
}

// Input returns the input frame for the given step number.
func (a Autopilot) Input(step int) core.InputFrame {
	in := core.NewInputFrame()
	if a.FireEvery > 0 && step%a.FireEvery == 0 {
		in.Set(core.ActionFire)
	}
	if a.SweepTicks > 0 {
		if (step/a.SweepTicks)%2 == 0 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
	}
	if a.MagnetAt > 0 && step == a.MagnetAt {
		in.Set(core.ActionMagnet)
	}
	return in
}

// RunResult summarizes a headless run.
type RunResult struct {
	Steps  int // Steps fed to the game, including serve steps
	Ticks  int // Simulated ticks
	Phase  string
	Score  int
	Lives  int
	Level  string
	Stats  Stats
	Hash   uint64
	Reason string // Why the run stopped
}

// RunHeadless resets g with runtime and feeds it autopilot input for up to
// steps steps. It stops early when the game ends.
func RunHeadless(g *Game, runtime core.RuntimeConfig, pilot Autopilot, steps int) RunResult {
	g.Reset(runtime)

	res := RunResult{Reason: "step limit"}
	if g.screenTooSmall {
		res.Reason = "screen too small"
	}

	for res.Steps < steps && !g.screenTooSmall {
		in := pilot.Input(res.Steps)
		// A cleared level waits in serve until the next fire press
		if g.state == StateServe {
			in.Set(core.ActionFire)
		}
		g.Step(in)
		res.Steps++

		if g.state == StateGameOver || g.state == StateWin {
			res.Reason = g.state
			break
		}
	}

	res.Ticks = g.tickCount
	res.Phase = g.state
	res.Score = g.score
	res.Lives = g.lives
	res.Level = g.level.ID
	res.Stats = g.stats
	res.Hash = g.StateHash()
	g.log.Info("headless run finished",
		"steps", res.Steps, "ticks", res.Ticks, "score", res.Score,
		"reason", res.Reason, "hash", res.Hash)
	return res
}
