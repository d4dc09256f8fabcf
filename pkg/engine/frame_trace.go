package engine

import (
	"sync"
	"time"

	"github.com/go-drift/ripple/pkg/layout"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	AnimateMs float64 `json:"animateMs"`
	LayoutMs  float64 `json:"layoutMs"`
	RecordMs  float64 `json:"recordMs"`
}

// FrameSample is a single frame trace sample. Times are wall-clock, not
// the animation clock.
type FrameSample struct {
	Timestamp       int64             `json:"ts"`
	FrameMs         float64           `json:"frameMs"`
	Phases          FramePhaseTimings `json:"phases"`
	ActiveTickers   int               `json:"activeTickers"`
	RenderNodeCount int               `json:"renderNodeCount"`
	Painted         bool              `json:"painted"`
}

// FrameTimeline is a chronological view of recent samples.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a new frame trace buffer. Non-positive
// arguments select the defaults: 240 samples and one 60 Hz frame.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Add records a frame sample and counts it as dropped when it took longer
// than the threshold.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.dropped++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return FrameTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:       result,
		DroppedFrames: b.dropped,
		ThresholdMs:   durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func countRenderTree(root layout.RenderObject) int {
	if root == nil {
		return 0
	}
	count := 1
	if cv, ok := root.(layout.ChildVisitor); ok {
		cv.VisitChildren(func(child layout.RenderObject) {
			count += countRenderTree(child)
		})
	}
	return count
}
