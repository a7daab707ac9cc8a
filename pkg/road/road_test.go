package road

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDefault(t *testing.T) *Track {
	t.Helper()
	track, err := Build(1000, 100, 5)
	require.NoError(t, err)
	return track
}

func TestBuild(t *testing.T) {
	track := buildDefault(t)

	assert.Equal(t, 1000, track.Total())
	assert.Equal(t, 100000.0, track.Length())
	for i, seg := range track.Segments {
		assert.Equal(t, i, seg.Index)
		assert.Equal(t, float64(i)*100, seg.Z)
	}
}

func TestBuild_StartAndFinishBands(t *testing.T) {
	track := buildDefault(t)

	for i := 0; i < 5; i++ {
		assert.Equal(t, StartTint, track.Segments[i].Palette.Road, "segment %d", i)
	}
	for i := 995; i < 1000; i++ {
		assert.Equal(t, FinishTint, track.Segments[i].Palette.Road, "segment %d", i)
	}

	// Only the overridden segments change; other segments keep their band tint
	assert.Equal(t, Light.Road, track.Segments[10].Palette.Road)
	assert.Equal(t, Dark.Road, track.Segments[5].Palette.Road)
	assert.Equal(t, Dark.Road, track.Segments[990-5].Palette.Road)
	assert.Equal(t, color.RGBA{136, 136, 136, 255}, Light.Road, "shared palette must not be mutated")
}

func TestBuild_Banding(t *testing.T) {
	track := buildDefault(t)

	for i := 5; i < 10; i++ {
		assert.Equal(t, Dark, track.Segments[i].Palette)
	}
	for i := 10; i < 15; i++ {
		assert.Equal(t, Light, track.Segments[i].Palette)
	}
	assert.NotEqual(t, track.Segments[5].Palette, track.Segments[10].Palette)
	assert.True(t, track.Segments[7].Palette.HasLane)
	assert.False(t, track.Segments[12].Palette.HasLane)
}

func TestBuild_Options(t *testing.T) {
	track, err := Build(300, 50, 3, WithRoadWidth(800), WithLanes(4), WithVisibleSegments(120))
	require.NoError(t, err)

	assert.Equal(t, 800.0, track.RoadWidth)
	assert.Equal(t, 4, track.Lanes)
	assert.Equal(t, 120, track.VisibleSegments)
}

func TestBuild_VisibleSegmentsCappedAtTotal(t *testing.T) {
	track, err := Build(50, 100, 5, WithVisibleSegments(200))
	require.NoError(t, err)
	assert.Equal(t, 50, track.VisibleSegments)
}

func TestBuild_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		length float64
		rumble int
		opts   []Option
		want   error
	}{
		{name: "zero segments", count: 0, length: 100, rumble: 5, want: ErrInvalidSegmentCount},
		{name: "negative segments", count: -3, length: 100, rumble: 5, want: ErrInvalidSegmentCount},
		{name: "zero length", count: 10, length: 0, rumble: 5, want: ErrInvalidSegmentLength},
		{name: "negative length", count: 10, length: -1, rumble: 5, want: ErrInvalidSegmentLength},
		{name: "zero rumble band", count: 10, length: 100, rumble: 0, want: ErrInvalidRumbleBand},
		{name: "zero road width", count: 10, length: 100, rumble: 5, opts: []Option{WithRoadWidth(0)}, want: ErrInvalidRoadWidth},
		{name: "zero lanes", count: 10, length: 100, rumble: 5, opts: []Option{WithLanes(0)}, want: ErrInvalidLanes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := Build(tt.count, tt.length, tt.rumble, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, track)
		})
	}
}

func TestLookup(t *testing.T) {
	track := buildDefault(t)

	tests := []struct {
		name string
		z    float64
		want int
	}{
		{name: "origin", z: 0, want: 0},
		{name: "inside first segment", z: 99.9, want: 0},
		{name: "segment boundary", z: 100, want: 1},
		{name: "last segment", z: 99950, want: 999},
		{name: "exactly road length", z: 100000, want: 0},
		{name: "past road length", z: 100250, want: 2},
		{name: "just behind origin", z: -1, want: 999},
		{name: "negative", z: -250, want: 997},
		{name: "several loops behind", z: -300050, want: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, track.Lookup(tt.z).Index)
		})
	}
}

func TestLookup_WrapIdempotence(t *testing.T) {
	track := buildDefault(t)

	for _, z := range []float64{0, 1, 150, 4999.5, 50000, 99999, -1, -75000} {
		direct := track.Lookup(z)
		wrapped := track.Lookup(z + track.Length())
		assert.Equal(t, direct.Index, wrapped.Index, "z=%v", z)
		assert.Equal(t, direct.Index, track.Lookup(wrapped.Z).Index, "z=%v", z)
	}
}

func TestWrap(t *testing.T) {
	track := buildDefault(t)

	assert.Equal(t, 0.0, track.Wrap(0))
	assert.Equal(t, 0.0, track.Wrap(100000))
	assert.Equal(t, 500.0, track.Wrap(100500))
	assert.Equal(t, 99900.0, track.Wrap(-100))

	got := track.Wrap(-1e-12)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, track.Length())
}

func TestWrapIndex(t *testing.T) {
	track := buildDefault(t)

	assert.Equal(t, 0, track.WrapIndex(1000))
	assert.Equal(t, 999, track.WrapIndex(-1))
	assert.Equal(t, 5, track.WrapIndex(2005))
	assert.Equal(t, 999, track.SegmentAt(-1).Index)
}

func TestForwardDistance(t *testing.T) {
	track := buildDefault(t)

	assert.Equal(t, 50.0, track.ForwardDistance(1000, 1050))
	assert.Equal(t, 150.0, track.ForwardDistance(99950, 100))
	assert.Equal(t, 99950.0, track.ForwardDistance(100, 50))
	assert.Equal(t, 0.0, track.ForwardDistance(300, 300))
}

func TestSegmentsAhead(t *testing.T) {
	track := buildDefault(t)

	assert.Equal(t, 10, track.SegmentsAhead(990, 0))
	assert.Equal(t, 999, track.SegmentsAhead(1, 0))
}
