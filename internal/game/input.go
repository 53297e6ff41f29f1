package game

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wrapsnake/internal/world"
)

// Direction maps a directional action onto a board direction.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionUp:
		return world.Up, true
	case ActionDown:
		return world.Down, true
	case ActionLeft:
		return world.Left, true
	case ActionRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// keyAction maps a key press onto an action.
func keyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		case 'a', 'A':
			return ActionLeft
		case 'd', 'D':
			return ActionRight
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// inputSource turns terminal events into one action per tick.
type inputSource struct {
	events   <-chan tcell.Event
	onResize func()
	done     chan struct{}
	stopOnce sync.Once
}

// newInputSource forwards events from poll until it returns nil or the
// source is stopped.
func newInputSource(poll func() tcell.Event, onResize func()) *inputSource {
	ch := make(chan tcell.Event, 64)
	done := make(chan struct{})
	go func() {
		defer close(ch)
		for {
			select {
			case <-done:
				return
			default:
			}

			ev := poll()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	}()
	return &inputSource{events: ch, onResize: onResize, done: done}
}

// stop releases the forwarding goroutine. A goroutine parked in poll exits
// once poll returns.
func (in *inputSource) stop() {
	in.stopOnce.Do(func() {
		if in.done != nil {
			close(in.done)
		}
	})
}

// next waits up to timeout for an event. Events already queued behind the
// first one are discarded so a burst of presses moves the snake once.
// A closed source or cancelled context reads as quit.
func (in *inputSource) next(ctx context.Context, timeout time.Duration) Action {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ActionQuit
	case <-timer.C:
		return ActionNone
	case ev, ok := <-in.events:
		if !ok {
			return ActionQuit
		}
		action := in.handle(ev)
		in.drain()
		return action
	}
}

// waitKey blocks until any key is pressed, the source closes or ctx ends.
func (in *inputSource) waitKey(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in.events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
			in.handle(ev)
		}
	}
}

func (in *inputSource) drain() {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				in.handle(ev)
			}
		default:
			return
		}
	}
}

func (in *inputSource) handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyAction(ev)
	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize()
		}
	}
	return ActionNone
}
