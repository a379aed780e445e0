// Package clock abstracts wall-clock reads so round-trip timing can be tested.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on c since start.
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}

// MockClock returns CurrentTime until advanced.
type MockClock struct {
	CurrentTime time.Time
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the mock clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// SteppingClock advances by Step after every Now call, so two consecutive
// reads are exactly Step apart.
type SteppingClock struct {
	MockClock
	Step time.Duration
}

func (c *SteppingClock) Now() time.Time {
	now := c.CurrentTime
	c.Advance(c.Step)
	return now
}
