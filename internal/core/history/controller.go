package history

import (
	"fmt"
	"time"

	"github.com/bethropolis/tidenote/internal/logger"
)

// DefaultBatchWindow is how close together two edits of the same kind must be
// to land in one undo step.
const DefaultBatchWindow = 1000 * time.Millisecond

// Surface is the text-bearing widget the controller records and replays edits
// against. The controller never keeps a copy of the document.
type Surface interface {
	Text() string
	ReplaceRange(start, end int, text string) error
	SetCursor(offset int)
}

// Config holds the controller's tunables.
type Config struct {
	MaxSize     int              // Entry limit, Unbounded for none
	BatchWindow time.Duration    // Coalescing window for same-kind edits
	Now         func() time.Time // Clock, replaceable in tests
}

// DefaultConfig provides an unbounded history with a one second batch window.
func DefaultConfig() Config {
	return Config{
		MaxSize:     Unbounded,
		BatchWindow: DefaultBatchWindow,
		Now:         time.Now,
	}
}

// Controller owns an EditLog, feeds it from change notifications and drives
// undo/redo back into the surface.
type Controller struct {
	surface Surface
	log     *EditLog
	cfg     Config

	lastAction ActionType
	lastTime   time.Time

	// suspended is non-zero while the controller itself is mutating the
	// surface; notifications caused by that mutation are not recorded.
	suspended int
}

// NewController creates a controller for surface with an empty history.
func NewController(surface Surface, cfg Config) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BatchWindow < 0 {
		cfg.BatchWindow = DefaultBatchWindow
	}
	c := &Controller{
		surface: surface,
		log:     NewEditLog(),
		cfg:     cfg,
	}
	c.log.SetMaxSize(cfg.MaxSize)
	return c
}

// Log exposes the underlying edit log for inspection.
func (c *Controller) Log() *EditLog {
	return c.log
}

// TextChanged records a change notification from the surface. start is the
// rune offset of the change, removed and inserted the verbatim text.
func (c *Controller) TextChanged(start int, removed, inserted string) {
	if c.suspended > 0 {
		return
	}

	action := Classify(removed, inserted)
	if action == NoAction {
		return
	}

	now := c.cfg.Now()
	last := c.log.Current()

	if c.extends(last, action, start, removed, now) {
		switch action {
		case DeleteAction:
			last.Start = start
			last.Before = removed + last.Before
		case InsertAction:
			last.After += inserted
		}
		logger.DebugTagf("history", "History: Extended %v entry at %d (before=%q after=%q)", action, last.Start, last.Before, last.After)
	} else {
		c.log.Push(&Entry{Start: start, Before: removed, After: inserted})
		logger.DebugTagf("history", "History: Recorded %v at %d. Position: %d, Count: %d", action, start, c.log.Position(), c.log.Len())
	}

	c.lastAction = action
	c.lastTime = now
}

// extends decides whether an edit is folded into the current entry instead of
// starting a new one.
func (c *Controller) extends(last *Entry, action ActionType, start int, removed string, now time.Time) bool {
	if last == nil || action != c.lastAction || action == ReplaceAction {
		return false
	}
	if now.Sub(c.lastTime) > c.cfg.BatchWindow {
		return false
	}
	// The entry must stay contiguous or replaying it would touch the wrong text.
	switch action {
	case InsertAction:
		return start == last.Start+runeLen(last.After)
	case DeleteAction:
		return start+runeLen(removed) == last.Start
	}
	return false
}

// CanUndo reports whether there is an applied entry to revert.
func (c *Controller) CanUndo() bool {
	return c.log.Position() > 0
}

// CanRedo reports whether there is an undone entry to reapply.
func (c *Controller) CanRedo() bool {
	return c.log.Position() < c.log.Len()
}

// Undo reverts the most recent applied entry. It returns false with no error
// when there is nothing to undo.
func (c *Controller) Undo() (bool, error) {
	if !c.CanUndo() {
		logger.Debugf("History: Nothing to undo.")
		return false, nil
	}

	e := c.log.StepBack()
	end := e.Start + runeLen(e.After)
	if err := c.replace(e.Start, end, e.Before); err != nil {
		c.log.StepForward()
		logger.Errorf("History: Error undoing entry at %d: %v", e.Start, err)
		return false, fmt.Errorf("undo failed: %w", err)
	}
	c.surface.SetCursor(e.Start + runeLen(e.Before))
	c.breakBatch()

	logger.Debugf("History: Undid entry at %d. Position: %d", e.Start, c.log.Position())
	return true, nil
}

// Redo reapplies the most recently undone entry. It returns false with no
// error when there is nothing to redo.
func (c *Controller) Redo() (bool, error) {
	if !c.CanRedo() {
		logger.Debugf("History: Nothing to redo. Position=%d, Count=%d", c.log.Position(), c.log.Len())
		return false, nil
	}

	e := c.log.StepForward()
	end := e.Start + runeLen(e.Before)
	if err := c.replace(e.Start, end, e.After); err != nil {
		c.log.StepBack()
		logger.Errorf("History: Error redoing entry at %d: %v", e.Start, err)
		return false, fmt.Errorf("redo failed: %w", err)
	}
	c.surface.SetCursor(e.Start + runeLen(e.After))
	c.breakBatch()

	logger.Debugf("History: Redid entry at %d. Position: %d", e.Start, c.log.Position())
	return true, nil
}

// replace mutates the surface with capture suspended.
func (c *Controller) replace(start, end int, text string) error {
	release := c.suspendCapture()
	defer release()
	return c.surface.ReplaceRange(start, end, text)
}

// suspendCapture stops TextChanged from recording until the returned func is
// called. Nested suspensions are allowed; release is safe to call twice.
func (c *Controller) suspendCapture() func() {
	c.suspended++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		c.suspended--
	}
}

// Capturing reports whether change notifications are currently recorded.
func (c *Controller) Capturing() bool {
	return c.suspended == 0
}

// breakBatch makes the next edit start a new entry. After an undo or redo the
// current entry is no longer the last thing typed.
func (c *Controller) breakBatch() {
	c.lastAction = NoAction
	c.lastTime = time.Time{}
}

// SetMaxSize bounds the history, evicting the oldest entries if needed.
func (c *Controller) SetMaxSize(n int) {
	c.log.SetMaxSize(n)
	logger.Debugf("History: Max size set to %d. Position: %d, Count: %d", c.log.MaxSize(), c.log.Position(), c.log.Len())
}

// Clear drops all history. Call this after loading a different document.
func (c *Controller) Clear() {
	c.log.Clear()
	c.breakBatch()
	logger.Debugf("History: Cleared.")
}
