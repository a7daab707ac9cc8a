package road

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSegmentCount  = errors.New("segment count must be positive")
	ErrInvalidSegmentLength = errors.New("segment length must be positive")
	ErrInvalidRumbleBand    = errors.New("rumble band size must be positive")
	ErrInvalidRoadWidth     = errors.New("road width must be positive")
	ErrInvalidLanes         = errors.New("lane count must be positive")
)

// Segment is a fixed-length slice of track
type Segment struct {
	Index   int     // Position in the circular ordering
	Z       float64 // Longitudinal distance from the track origin
	Palette Palette // Own copy, so finishing touches never leak into other segments
}

// Track is the closed loop of segments for one session
type Track struct {
	Segments        []Segment
	SegmentLength   float64
	RumbleSegments  int
	RoadWidth       float64 // Half-width of the road surface in world units
	Lanes           int
	VisibleSegments int
}

// Option adjusts the non-structural track parameters
type Option func(*Track)

// WithRoadWidth sets the road half-width in world units
func WithRoadWidth(width float64) Option {
	return func(t *Track) { t.RoadWidth = width }
}

// WithLanes sets the number of lanes painted on dark bands
func WithLanes(lanes int) Option {
	return func(t *Track) { t.Lanes = lanes }
}

// WithVisibleSegments sets how many segments are drawn ahead of the camera
func WithVisibleSegments(n int) Option {
	return func(t *Track) { t.VisibleSegments = n }
}

// Build creates a straight track of segmentCount segments, banded in light and
// dark palettes, with the first and last rumble band painted as start and finish
func Build(segmentCount int, segmentLength float64, rumbleSegments int, opts ...Option) (*Track, error) {
	if segmentCount <= 0 {
		return nil, fmt.Errorf("build track with %d segments: %w", segmentCount, ErrInvalidSegmentCount)
	}
	if segmentLength <= 0 || math.IsNaN(segmentLength) || math.IsInf(segmentLength, 0) {
		return nil, fmt.Errorf("build track with segment length %v: %w", segmentLength, ErrInvalidSegmentLength)
	}
	if rumbleSegments <= 0 {
		return nil, fmt.Errorf("build track with rumble band %d: %w", rumbleSegments, ErrInvalidRumbleBand)
	}

	t := &Track{
		Segments:        make([]Segment, segmentCount),
		SegmentLength:   segmentLength,
		RumbleSegments:  rumbleSegments,
		RoadWidth:       DefaultRoadWidth,
		Lanes:           DefaultLanes,
		VisibleSegments: DefaultVisibleSegments,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.RoadWidth <= 0 {
		return nil, fmt.Errorf("build track with road width %v: %w", t.RoadWidth, ErrInvalidRoadWidth)
	}
	if t.Lanes <= 0 {
		return nil, fmt.Errorf("build track with %d lanes: %w", t.Lanes, ErrInvalidLanes)
	}
	if t.VisibleSegments <= 0 || t.VisibleSegments > segmentCount {
		t.VisibleSegments = segmentCount
	}

	for i := range t.Segments {
		t.Segments[i] = Segment{
			Index:   i,
			Z:       float64(i) * segmentLength,
			Palette: BandPalette(i, rumbleSegments),
		}
	}

	// Start and finish lines; on tracks shorter than two bands the finish wins
	for n := 0; n < rumbleSegments && n < segmentCount; n++ {
		t.Segments[n].Palette.Road = StartTint
		t.Segments[segmentCount-1-n].Palette.Road = FinishTint
	}

	return t, nil
}

// Total returns the number of segments
func (t *Track) Total() int {
	return len(t.Segments)
}

// Length returns the total length of the loop
func (t *Track) Length() float64 {
	return float64(len(t.Segments)) * t.SegmentLength
}

// Wrap normalises z into [0, Length)
func (t *Track) Wrap(z float64) float64 {
	length := t.Length()
	z = math.Mod(z, length)
	if z < 0 {
		z += length
	}
	// Mod of a tiny negative value can round up to length
	if z >= length {
		z = 0
	}
	return z
}

// IndexAt returns the index of the segment covering z
func (t *Track) IndexAt(z float64) int {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0
	}
	index := int(t.Wrap(z)/t.SegmentLength) % len(t.Segments)
	return index
}

// Lookup returns the segment covering z; any finite z maps to a segment
func (t *Track) Lookup(z float64) Segment {
	return t.Segments[t.IndexAt(z)]
}

// SegmentAt returns the segment at a circular index
func (t *Track) SegmentAt(index int) Segment {
	return t.Segments[t.WrapIndex(index)]
}

// WrapIndex maps any integer onto 0..Total-1
func (t *Track) WrapIndex(index int) int {
	n := len(t.Segments)
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

// ForwardDistance returns how far ahead `to` is from `from` going around the loop, in [0, Length)
func (t *Track) ForwardDistance(from, to float64) float64 {
	return t.Wrap(to - from)
}

// SegmentsAhead returns how many segments ahead index `to` is from index `from`, in 0..Total-1
func (t *Track) SegmentsAhead(from, to int) int {
	return t.WrapIndex(to - from)
}
