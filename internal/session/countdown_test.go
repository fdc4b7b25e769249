package session

import "testing"

func TestCountdown_ExpiresOnce(t *testing.T) {
	var c Countdown
	tok := c.Start(3)
	if !c.Running() || c.Remaining() != 3 {
		t.Fatalf("after Start: running=%v remaining=%d", c.Running(), c.Remaining())
	}
	if c.Tick(tok) || c.Tick(tok) {
		t.Fatal("expired early")
	}
	if !c.Tick(tok) {
		t.Fatal("did not expire on third tick")
	}
	if c.Tick(tok) {
		t.Error("expired twice")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestCountdown_StaleTokenIgnored(t *testing.T) {
	var c Countdown
	old := c.Start(1)
	cur := c.Start(2)
	if c.Tick(old) {
		t.Error("stale token expired the countdown")
	}
	if c.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", c.Remaining())
	}
	c.Tick(cur)
	if !c.Tick(cur) {
		t.Error("current token did not expire")
	}
}

func TestCountdown_Cancel(t *testing.T) {
	var c Countdown
	tok := c.Start(1)
	c.Cancel()
	if c.Running() {
		t.Error("still running after Cancel")
	}
	if c.Tick(tok) {
		t.Error("tick after Cancel expired")
	}
}

func TestCountdown_ZeroDisabled(t *testing.T) {
	var c Countdown
	tok := c.Start(0)
	if c.Running() {
		t.Error("zero-second countdown is running")
	}
	if c.Tick(tok) {
		t.Error("disabled countdown expired")
	}
}

func TestCountdown_PauseResume(t *testing.T) {
	var c Countdown
	tok := c.Start(3)
	c.Tick(tok)

	c.Pause()
	if c.Running() {
		t.Fatal("running while paused")
	}
	if c.Tick(tok) {
		t.Fatal("paused countdown expired")
	}
	if c.Remaining() != 2 {
		t.Fatalf("Remaining = %d, want 2", c.Remaining())
	}

	resumed, ok := c.Resume()
	if !ok || resumed == tok {
		t.Fatalf("Resume = %d, %v", resumed, ok)
	}
	if c.Tick(tok) {
		t.Error("pre-pause token still live")
	}
	if c.Tick(resumed) || !c.Tick(resumed) {
		t.Error("resumed countdown did not expire after the remaining ticks")
	}

	if _, ok := c.Resume(); ok {
		t.Error("Resume without Pause reported ok")
	}
}
