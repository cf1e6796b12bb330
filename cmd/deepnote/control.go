package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gordonklaus/deepnote"
)

// panel is the keyboard control panel.  Its fields mirror what it last
// sent to the ensemble; the ensemble validates and applies the changes on
// the audio goroutine.
type panel struct {
	p          *piece
	multiplier float64
	detune     float64
	cp1, cp2   float64
}

// key applies one keystroke and reports whether to quit.
func (pl *panel) key(b byte) (quit bool, err error) {
	e := pl.p.ensemble
	switch b {
	case 'q', 3, 4: // q, ctrl-c, ctrl-d
		return true, nil
	case 's':
		return false, e.ApplyHolds(pl.p.table, deepnote.StartRow)
	case 't':
		return false, e.ApplyTargets(pl.p.table, deepnote.TargetRow)
	case 'r':
		return false, e.ApplyTargets(pl.p.table, deepnote.StartRow)
	case '+', '=':
		pl.multiplier *= 2
		return false, pl.animate()
	case '-', '_':
		pl.multiplier /= 2
		return false, pl.animate()
	case ']':
		pl.detune += 0.5
		return false, e.DetuneOscillators(deepnote.DetuneHz(pl.detune))
	case '[':
		pl.detune -= 0.5
		return false, e.DetuneOscillators(deepnote.DetuneHz(pl.detune))
	}
	return false, nil
}

func (pl *panel) animate() error {
	return pl.p.ensemble.SetAnimation(deepnote.AnimationMultiplier(pl.multiplier),
		deepnote.ControlPoint1(pl.cp1), deepnote.ControlPoint2(pl.cp2))
}

func (pl *panel) status() string {
	return fmt.Sprintf("\r%2d/%d at target  speed x%-6g detune %-5g Hz ",
		pl.p.ensemble.AtTarget(), pl.p.ensemble.Len(), pl.multiplier, pl.detune)
}

// control runs the panel until q.  When in is a terminal it is switched to
// raw mode so that single keystrokes arrive unbuffered.
func control(p *piece, c config, in *os.File, out io.Writer, logger *slog.Logger) error {
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, old)
	} else {
		logger.Warn("stdin is not a terminal; keys need a newline")
	}

	pl := &panel{p: p, multiplier: c.multiplier, detune: c.detune, cp1: c.cp1, cp2: c.cp2}
	fmt.Fprint(out, pl.status())
	buf := make([]byte, 1)
	for {
		if _, err := in.Read(buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		quit, err := pl.key(buf[0])
		if err != nil {
			logger.Warn("control", "key", string(buf[0]), "err", err)
		}
		if quit {
			fmt.Fprintln(out, "\r")
			return nil
		}
		fmt.Fprint(out, pl.status())
	}
}
