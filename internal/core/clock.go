package core

import "wirespin/pkg/spinner"

// ShapeClock owns the two animation accumulators the frame computer expects
// its caller to manage, along with the advance-on-rollover duty: whenever
// shape-local time crosses ShapeDuration the clock consumes one shape from
// the queue and carries the remainder forward.
type ShapeClock struct {
	queue     *spinner.ShapeQueue
	totalTime float64
	shapeTime float64
	speed     float64
	advances  int64
	paused    bool
}

// NewShapeClock returns a clock driving the provided queue.
func NewShapeClock(queue *spinner.ShapeQueue, speed float64) *ShapeClock {
	c := &ShapeClock{queue: queue, speed: 1}
	c.SetSpeed(speed)
	return c
}

// NewQueue builds a shape queue for the configured seed; zero asks for a
// randomly seeded schedule.
func NewQueue(seed int64) *spinner.ShapeQueue {
	if seed == 0 {
		return spinner.NewShapeQueue()
	}
	return spinner.NewShapeQueueSeeded(seed)
}

// Tick advances the clock by dt seconds unless it is paused.
func (c *ShapeClock) Tick(dt float64) {
	if c.paused {
		return
	}
	c.Step(dt)
}

// Step advances the clock by dt seconds even while paused; hosts use it for
// single-frame stepping. Shape-local time scales with the speed multiplier,
// wall time does not.
func (c *ShapeClock) Step(dt float64) {
	if dt <= 0 {
		return
	}
	c.totalTime += dt
	c.shapeTime += dt * c.speed
	for c.shapeTime >= spinner.ShapeDuration {
		c.shapeTime -= spinner.ShapeDuration
		c.queue.Advance()
		c.advances++
	}
}

// Reset swaps in a new queue and rewinds the accumulators. Speed and pause
// state carry over.
func (c *ShapeClock) Reset(queue *spinner.ShapeQueue) {
	c.queue = queue
	c.totalTime = 0
	c.shapeTime = 0
	c.advances = 0
}

// Queue returns the queue the clock is driving.
func (c *ShapeClock) Queue() *spinner.ShapeQueue { return c.queue }

// TotalTime returns the unscaled seconds accumulated while running.
func (c *ShapeClock) TotalTime() float64 { return c.totalTime }

// ShapeTime returns the speed-scaled seconds into the current shape's slot.
func (c *ShapeClock) ShapeTime() float64 { return c.shapeTime }

// Advances returns how many shapes the clock has consumed since the last
// reset.
func (c *ShapeClock) Advances() int64 { return c.advances }

// Speed returns the current speed multiplier.
func (c *ShapeClock) Speed() float64 { return c.speed }

// SetSpeed applies the speed multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *ShapeClock) SetSpeed(speed float64) {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	c.speed = speed
}

// Paused reports whether Tick currently ignores time.
func (c *ShapeClock) Paused() bool { return c.paused }

// SetPaused switches tick processing on or off.
func (c *ShapeClock) SetPaused(p bool) { c.paused = p }

const (
	// MinSpeed and MaxSpeed bound the user-adjustable speed multiplier.
	MinSpeed = 0.1
	MaxSpeed = 8.0
)
