// SPDX-License-Identifier: MIT

package player

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/step"
)

// Controller replays one step.Sequence at a time. All methods are safe for
// concurrent use.
type Controller struct {
	mu sync.Mutex

	clock     Clock
	log       *slog.Logger
	metrics   Metrics
	baseDelay time.Duration
	speed     float64

	seq    step.Sequence
	loadID uuid.UUID
	state  State
	pos    int

	timer Timer
	gen   uint64

	subs    map[int]func(Frame)
	nextSub int
	closed  bool

	// pub serializes delivery so subscribers see frames in lock order.
	pub sync.Mutex
}

// New returns an idle Controller with nothing loaded.
func New(opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Controller{
		clock:     o.Clock,
		log:       o.Logger,
		metrics:   o.Metrics,
		baseDelay: o.BaseDelay,
		speed:     ClampSpeed(o.Speed),
		state:     StateIdle,
		subs:      make(map[int]func(Frame)),
	}, nil
}

// Load replaces the current sequence, cancelling any pending advance. The
// controller becomes idle at position 0 under a fresh LoadID.
func (c *Controller) Load(seq step.Sequence) (uuid.UUID, error) {
	if seq == nil {
		return uuid.Nil, ErrNilSequence
	}
	if seq.Len() == 0 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrEmptySequence, seq.Name())
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return uuid.Nil, nil
	}
	c.stopTimerLocked()
	c.seq = seq
	c.loadID = uuid.New()
	c.pos = 0
	c.setStateLocked(StateIdle)
	c.metrics.Loaded(seq.Name(), seq.Len())
	c.log.Debug("player: load", "algorithm", seq.Name(), "steps", seq.Len(), "load_id", c.loadID)
	id := c.loadID
	c.publishAndUnlock()
	return id, nil
}

// Play starts auto-advance from idle or paused. It reports whether the
// call changed anything; play while playing or finished is a no-op.
func (c *Controller) Play() bool {
	c.mu.Lock()
	if !c.readyLocked("play") || !c.playLocked() {
		c.mu.Unlock()
		return false
	}
	c.publishAndUnlock()
	return true
}

// Pause stops auto-advance. It is a no-op unless playing.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	if !c.readyLocked("pause") || !c.pauseLocked() {
		c.mu.Unlock()
		return false
	}
	c.publishAndUnlock()
	return true
}

// Toggle pauses while playing and plays otherwise, deciding and acting
// under one lock.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	if !c.readyLocked("toggle") {
		c.mu.Unlock()
		return false
	}
	var changed bool
	if c.state == StatePlaying {
		changed = c.pauseLocked()
	} else {
		changed = c.playLocked()
	}
	if !changed {
		c.mu.Unlock()
		return false
	}
	c.publishAndUnlock()
	return true
}

// playLocked moves idle or paused to playing, or straight to finished at
// the terminal step.
func (c *Controller) playLocked() bool {
	if c.state != StateIdle && c.state != StatePaused {
		return false
	}
	if c.atEndLocked() {
		c.setStateLocked(StateFinished)
		return true
	}
	c.setStateLocked(StatePlaying)
	c.scheduleLocked()
	return true
}

func (c *Controller) pauseLocked() bool {
	if c.state != StatePlaying {
		return false
	}
	c.stopTimerLocked()
	c.setStateLocked(StatePaused)
	return true
}

// StepForward advances one step from idle or paused. Reaching the terminal
// step finishes playback. It is rejected while playing and does nothing at
// the terminal step.
func (c *Controller) StepForward() bool {
	c.mu.Lock()
	if !c.readyLocked("step-forward") || c.rejectWhilePlayingLocked("step-forward") {
		c.mu.Unlock()
		return false
	}
	if c.atEndLocked() {
		c.mu.Unlock()
		return false
	}
	c.advanceLocked(false)
	c.publishAndUnlock()
	return true
}

// StepBackward moves back one step, flooring at 0, and leaves the
// controller paused. Idle at position 0 stays idle. It is rejected while
// playing.
func (c *Controller) StepBackward() bool {
	c.mu.Lock()
	if !c.readyLocked("step-backward") || c.rejectWhilePlayingLocked("step-backward") {
		c.mu.Unlock()
		return false
	}
	if c.pos == 0 {
		c.mu.Unlock()
		return false
	}
	c.pos--
	c.metrics.Advanced(c.seq.Name(), false)
	c.setStateLocked(StatePaused)
	c.publishAndUnlock()
	return true
}

// Seek moves the cursor to k clamped into [0, Len()-1]. The controller is
// finished on the terminal step and paused anywhere else. It is rejected
// while playing.
func (c *Controller) Seek(k int) bool {
	c.mu.Lock()
	if !c.readyLocked("seek") || c.rejectWhilePlayingLocked("seek") {
		c.mu.Unlock()
		return false
	}
	c.pos = Clamp(k, c.seq.Len())
	if c.atEndLocked() {
		c.setStateLocked(StateFinished)
	} else {
		c.setStateLocked(StatePaused)
	}
	c.publishAndUnlock()
	return true
}

// Reset returns to position 0 and idle from any state, cancelling any
// pending advance.
func (c *Controller) Reset() bool {
	c.mu.Lock()
	if !c.readyLocked("reset") {
		c.mu.Unlock()
		return false
	}
	c.stopTimerLocked()
	c.pos = 0
	c.setStateLocked(StateIdle)
	c.publishAndUnlock()
	return true
}

// SetSpeed sets the speed multiplier, clamped to [MinSpeed, MaxSpeed], and
// returns the effective value. A pending delay keeps its length; the new
// speed applies from the next one.
func (c *Controller) SetSpeed(x float64) float64 {
	c.mu.Lock()
	c.speed = ClampSpeed(x)
	s := c.speed
	if c.closed || c.seq == nil {
		c.mu.Unlock()
		return s
	}
	c.log.Debug("player: speed", "speed", s, "delay", Delay(c.baseDelay, s))
	c.publishAndUnlock()
	return s
}

// Speed returns the current speed multiplier.
func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Frame returns the current frame.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

// Sequence returns the loaded sequence and the frame describing the cursor
// on it, read atomically.
func (c *Controller) Sequence() (step.Sequence, Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq, c.frameLocked()
}

// Subscribe registers fn to receive a Frame after every change. fn runs
// synchronously on the goroutine that made the change, in lock order. It
// must not block and must not call back into the Controller; hand the frame
// off to a channel instead. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(Frame)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Close stops any pending advance and drops all subscribers. Every later
// call is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.stopTimerLocked()
	c.closed = true
	c.subs = map[int]func(Frame){}
	c.log.Debug("player: closed")
}

// Clamp returns max(0, min(k, n-1)), or 0 when n is 0.
func Clamp(k, n int) int {
	if n <= 0 || k < 0 {
		return 0
	}
	if k > n-1 {
		return n - 1
	}
	return k
}

func (c *Controller) readyLocked(op string) bool {
	if c.closed || c.seq == nil {
		c.metrics.Rejected(op)
		return false
	}
	return true
}

func (c *Controller) rejectWhilePlayingLocked(op string) bool {
	if c.state != StatePlaying {
		return false
	}
	c.metrics.Rejected(op)
	c.log.Debug("player: rejected while playing", "op", op, "pos", c.pos)
	return true
}

func (c *Controller) atEndLocked() bool {
	return c.pos == c.seq.Len()-1
}

// advanceLocked moves one step forward and finishes on the terminal step.
// Any other state stays as is except idle, which becomes paused.
func (c *Controller) advanceLocked(auto bool) {
	c.pos++
	c.metrics.Advanced(c.seq.Name(), auto)
	switch {
	case c.atEndLocked():
		c.setStateLocked(StateFinished)
	case c.state == StateIdle:
		c.setStateLocked(StatePaused)
	}
}

func (c *Controller) setStateLocked(to State) {
	from := c.state
	c.state = to
	if from == to {
		return
	}
	c.metrics.Transition(from, to)
	c.log.Debug("player: transition", "from", from, "to", to, "pos", c.pos)
}

// scheduleLocked arms the single pending timer for the current generation.
func (c *Controller) scheduleLocked() {
	c.gen++
	gen := c.gen
	c.timer = c.clock.AfterFunc(Delay(c.baseDelay, c.speed), func() { c.tick(gen) })
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// tick applies one auto-advance if gen is still current.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state != StatePlaying {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.advanceLocked(true)
	if c.state == StatePlaying {
		c.scheduleLocked()
	}
	c.publishAndUnlock()
}

func (c *Controller) frameLocked() Frame {
	f := Frame{LoadID: c.loadID, State: c.state, Position: c.pos, Speed: c.speed}
	if c.seq == nil {
		return f
	}
	f.Name = c.seq.Name()
	f.Total = c.seq.Len()
	if d, ok := c.seq.(step.Describer); ok {
		f.Note = d.Describe(c.pos)
	}
	return f
}

// publishAndUnlock snapshots the frame and subscribers, hands delivery to
// the pub lock before releasing mu, then calls every subscriber.
func (c *Controller) publishAndUnlock() {
	f := c.frameLocked()
	subs := make([]func(Frame), 0, len(c.subs))
	for _, id := range c.subIDsLocked() {
		subs = append(subs, c.subs[id])
	}
	c.pub.Lock()
	c.mu.Unlock()
	defer c.pub.Unlock()
	for _, fn := range subs {
		fn(f)
	}
}

// subIDsLocked returns subscriber IDs in registration order.
func (c *Controller) subIDsLocked() []int {
	ids := make([]int, 0, len(c.subs))
	for id := 0; id < c.nextSub; id++ {
		if _, ok := c.subs[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
