// Package scheduler replaces the browser-style frame and timer callbacks
// with a logical clock that the game loop (or a test) advances explicitly.
package scheduler

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler is what the reveal controller needs from its host.
type Scheduler interface {
	// Now returns the elapsed logical time.
	Now() time.Duration
	// RequestFrame runs fn once on the next frame.
	RequestFrame(fn func()) Handle
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Handle
	// Every runs fn every d until cancelled.
	Every(d time.Duration, fn func()) Handle
	// Cancel prevents a pending callback from running. Unknown or already
	// fired handles are ignored.
	Cancel(h Handle)
}

type task struct {
	id       Handle
	fn       func()
	deadline time.Duration
	interval time.Duration // 0 for one-shot timers
}

// Clock is a single-threaded Scheduler. Frame callbacks requested while a
// frame is running are deferred to the following Advance.
type Clock struct {
	now    time.Duration
	nextID Handle
	frames []task
	timers []task
	live   map[Handle]bool
}

func NewClock() *Clock {
	return &Clock{live: make(map[Handle]bool)}
}

func (c *Clock) Now() time.Duration { return c.now }

func (c *Clock) issue() Handle {
	c.nextID++
	c.live[c.nextID] = true
	return c.nextID
}

func (c *Clock) RequestFrame(fn func()) Handle {
	id := c.issue()
	c.frames = append(c.frames, task{id: id, fn: fn})
	return id
}

func (c *Clock) AfterFunc(d time.Duration, fn func()) Handle {
	id := c.issue()
	c.timers = append(c.timers, task{id: id, fn: fn, deadline: c.now + d})
	return id
}

func (c *Clock) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	id := c.issue()
	c.timers = append(c.timers, task{id: id, fn: fn, deadline: c.now + d, interval: d})
	return id
}

func (c *Clock) Cancel(h Handle) {
	delete(c.live, h)
}

// Pending reports how many callbacks are still scheduled.
func (c *Clock) Pending() int {
	return len(c.live)
}

// Advance moves logical time forward by dt, fires every timer whose
// deadline has passed in deadline order, then runs one frame.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for {
		i := c.nextDue(target)
		if i < 0 {
			break
		}
		t := c.timers[i]
		if t.deadline > c.now {
			c.now = t.deadline
		}
		if t.interval > 0 {
			c.timers[i].deadline += t.interval
		} else {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			delete(c.live, t.id)
		}
		t.fn()
	}
	c.now = target
	c.compactTimers()
	c.runFrame()
}

// Step advances by dt n times.
func (c *Clock) Step(dt time.Duration, n int) {
	for i := 0; i < n; i++ {
		c.Advance(dt)
	}
}

func (c *Clock) nextDue(target time.Duration) int {
	best := -1
	for i, t := range c.timers {
		if !c.live[t.id] || t.deadline > target {
			continue
		}
		if best < 0 || t.deadline < c.timers[best].deadline {
			best = i
		}
	}
	return best
}

func (c *Clock) compactTimers() {
	kept := c.timers[:0]
	for _, t := range c.timers {
		if c.live[t.id] {
			kept = append(kept, t)
		}
	}
	c.timers = kept
	sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].deadline < c.timers[j].deadline })
}

func (c *Clock) runFrame() {
	frames := c.frames
	c.frames = nil
	for _, f := range frames {
		if !c.live[f.id] {
			continue
		}
		delete(c.live, f.id)
		f.fn()
	}
}
