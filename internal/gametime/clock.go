// Package gametime provides the in-game clock.
package gametime

import (
	"fmt"
	"time"
)

const (
	// SecondsPerGameSecond is how many real seconds one game second lasts.
	SecondsPerGameSecond = 0.012

	realPerGameSecond = 12 * time.Millisecond
	day               = 24 * time.Hour
)

// Clock tracks the time of day in game seconds.
type Clock struct {
	now     time.Duration // Time of day, always in [0, 24h)
	days    int
	carry   time.Duration // Real time not yet worth a whole game second
	perGame time.Duration
}

// NewClock creates a clock starting at the given hour, minute and second.
func NewClock(hour, minute, second int) *Clock {
	c := &Clock{perGame: realPerGameSecond}
	c.Set(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
	return c
}

// Set moves the clock to a time of day. Whole days are discarded.
func (c *Clock) Set(t time.Duration) {
	t %= day
	if t < 0 {
		t += day
	}
	c.now = t
	c.carry = 0
}

// Now returns the current time of day.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Days returns how many midnights the clock has passed.
func (c *Clock) Days() int {
	return c.days
}

// Tick advances the clock by real elapsed time and returns the new time of day.
func (c *Clock) Tick(elapsed time.Duration) time.Duration {
	c.carry += elapsed
	whole := c.carry / c.perGame
	c.carry %= c.perGame
	return c.Advance(whole * time.Second)
}

// Advance moves the clock forward by game time and returns the new time of day.
func (c *Clock) Advance(d time.Duration) time.Duration {
	total := c.now + d
	c.days += int(total / day)
	c.now = total % day
	return c.now
}

// String formats the time of day as HH:MM:SS.
func (c *Clock) String() string {
	return Format(c.now)
}

// Format renders a time of day as HH:MM:SS.
func Format(t time.Duration) string {
	t %= day
	return fmt.Sprintf("%02d:%02d:%02d", int(t/time.Hour), int(t%time.Hour/time.Minute), int(t%time.Minute/time.Second))
}

// Parse reads a time of day in HH:MM or HH:MM:SS form.
func Parse(s string) (time.Duration, error) {
	var h, m, sec int
	n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	if err != nil && n < 2 {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
