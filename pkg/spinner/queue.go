package spinner

type queueEntry struct {
	name  string
	verts Shape
}

// ShapeQueue hands out an endless, lazily generated sequence of shapes. The
// shape at offset 0 is the one on screen, offset 1 the one being morphed
// toward; Advance moves the cursor once a morph completes. A queue serves a
// single caller: concurrent use needs one queue per goroutine.
type ShapeQueue struct {
	entries  []queueEntry
	consumed int
	seed     int64
}

// NewShapeQueue returns a queue seeded from the global random source.
func NewShapeQueue() *ShapeQueue {
	return NewShapeQueueSeeded(randomSeed())
}

// NewShapeQueueSeeded returns a queue with a fully deterministic schedule:
// two queues built from the same seed produce identical shape sequences. The
// queue starts on the plain dodecahedron and holds at least two buffered
// shapes at all times.
func NewShapeQueueSeeded(seed int64) *ShapeQueue {
	q := &ShapeQueue{seed: normalizeSeed(seed)}
	q.entries = append(q.entries, queueEntry{name: baseShapes[0].name, verts: baseShapes[0].verts})
	q.refill()
	q.refill()
	return q
}

// Shape returns the shape at the given offset from the cursor, refilling the
// buffer as needed. The offset must be non-negative; a negative offset is a
// programming error and panics.
func (q *ShapeQueue) Shape(offset int) Shape {
	q.ensure(offset)
	return q.entries[q.consumed+offset].verts
}

// ShapeName returns the library name of the shape at the given offset.
// Generated shapes all report "hybrid".
func (q *ShapeQueue) ShapeName(offset int) string {
	q.ensure(offset)
	return q.entries[q.consumed+offset].name
}

// Advance moves the cursor to the next shape. Once the cursor has walked far
// enough into the buffer, the stale prefix is dropped onto a fresh backing
// slice; the shapes at offsets 0 and 1 stay valid across the call.
func (q *ShapeQueue) Advance() {
	q.consumed++
	q.ensure(1)
	if q.consumed > trimThreshold {
		kept := make([]queueEntry, len(q.entries)-(q.consumed-retainBehind))
		copy(kept, q.entries[q.consumed-retainBehind:])
		q.entries = kept
		q.consumed = retainBehind
	}
}

// Len reports how many shapes are currently buffered.
func (q *ShapeQueue) Len() int { return len(q.entries) }

// Consumed reports the cursor position within the buffer.
func (q *ShapeQueue) Consumed() int { return q.consumed }

func (q *ShapeQueue) ensure(offset int) {
	for q.consumed+offset >= len(q.entries) {
		q.refill()
	}
}

// refill appends one batch: a Fisher-Yates shuffle of the full shape library
// with two or three fresh hybrids spliced in at seed-chosen positions. Every
// random draw advances the queue's seed through nextSeed.
func (q *ShapeQueue) refill() {
	batch := make([]queueEntry, len(baseShapes))
	for i, s := range baseShapes {
		batch[i] = queueEntry{name: s.name, verts: s.verts}
	}
	for i := len(batch) - 1; i > 0; i-- {
		q.seed = nextSeed(q.seed)
		j := int(q.seed % int64(i+1))
		batch[i], batch[j] = batch[j], batch[i]
	}

	q.seed = nextSeed(q.seed)
	hybrids := 2 + int(q.seed%2)
	for h := 0; h < hybrids; h++ {
		verts := generateHybrid(float64(q.seed)*hybridSeedScale + float64(h)*hybridSeedStride)
		q.seed = nextSeed(q.seed)
		at := int(q.seed % int64(len(batch)+1))
		batch = append(batch, queueEntry{})
		copy(batch[at+1:], batch[at:])
		batch[at] = queueEntry{name: hybridName, verts: verts}
	}
	q.entries = append(q.entries, batch...)
}

const (
	hybridName = "hybrid"

	hybridSeedScale  = 0.0001
	hybridSeedStride = 53.1

	// Advancing past trimThreshold compacts the buffer down to the
	// retainBehind entries before the cursor plus everything after it.
	trimThreshold = 20
	retainBehind  = 2
)
