package emu

import "time"

// pacer throttles the run loop to a target clock rate. It compares the
// cycles executed so far against wall-clock time since the loop
// started and sleeps off the difference. A loop that is already late
// skips the wait instead of trying to catch up faster than real time.
type pacer struct {
	hz    int
	start time.Time
}

func newPacer(hz int) *pacer {
	return &pacer{
		hz:    hz,
		start: time.Now(),
	}
}

// wait blocks until the wall clock catches up with elapsed cycles at
// the target rate. With a non-positive rate it returns immediately.
func (p *pacer) wait(elapsed uint64) {
	if p.hz <= 0 {
		return
	}
	deadline := p.start.Add(time.Duration(elapsed * uint64(time.Second) / uint64(p.hz)))
	if d := time.Until(deadline); d > 0 {
		time.Sleep(d)
	}
}
