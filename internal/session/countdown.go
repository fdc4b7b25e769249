package session

// Countdown is the per-question timer. Each Start returns a token; ticks
// carrying an older token are ignored so a previous question's timer can
// never fire into the current one.
type Countdown struct {
	token     int
	remaining int
	running   bool
	paused    bool
}

// Start cancels any previous run and begins counting down from seconds.
// A non-positive duration leaves the countdown stopped.
func (c *Countdown) Start(seconds int) int {
	c.token++
	c.remaining = max(seconds, 0)
	c.running = seconds > 0
	c.paused = false
	return c.token
}

// Tick advances the countdown by one second if token is current. It reports
// true exactly once, on the tick that reaches zero.
func (c *Countdown) Tick(token int) bool {
	if !c.running || token != c.token {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Cancel stops the countdown and invalidates outstanding ticks.
func (c *Countdown) Cancel() {
	c.token++
	c.running = false
	c.paused = false
}

// Pause stops a running countdown, keeping the remaining time. Outstanding
// ticks are invalidated.
func (c *Countdown) Pause() {
	if !c.running {
		return
	}
	c.token++
	c.running = false
	c.paused = true
}

// Resume restarts a paused countdown under a new token. ok is false when
// nothing was paused.
func (c *Countdown) Resume() (token int, ok bool) {
	if !c.paused {
		return c.token, false
	}
	c.token++
	c.paused = false
	c.running = true
	return c.token, true
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether a countdown is active.
func (c *Countdown) Running() bool { return c.running }

// Token returns the current run's token.
func (c *Countdown) Token() int { return c.token }
