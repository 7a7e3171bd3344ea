package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		min, max float64
		ok       bool
	}{
		{name: "plain range", input: "25-30", min: 25, max: 30, ok: true},
		{name: "with unit suffix", input: "30-45 min", min: 30, max: 45, ok: true},
		{name: "padded", input: " 10 - 20 ", min: 10, max: 20, ok: true},
		{name: "no dash", input: "30", ok: false},
		{name: "garbage", input: "soon-ish", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			min, max, ok := ParseRange(testCase.input)
			assert.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.min, min)
				assert.Equal(t, testCase.max, max)
			}
		})
	}
}

func TestAverageEstimate(t *testing.T) {
	tests := []struct {
		name   string
		ranges []string
		want   time.Duration
	}{
		{name: "single range", ranges: []string{"30-45"}, want: time.Duration(37.5 * float64(time.Minute))},
		{name: "two ranges averaged", ranges: []string{"30-45", "25-30"}, want: time.Duration(32.5 * float64(time.Minute))},
		{name: "unparseable skipped", ranges: []string{"junk", "20-40"}, want: 30 * time.Minute},
		{name: "none parse falls back", ranges: []string{"", "junk"}, want: DefaultEstimate},
		{name: "empty list falls back", ranges: nil, want: DefaultEstimate},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, AverageEstimate(testCase.ranges))
		})
	}
}

func TestEstimateLabel(t *testing.T) {
	assert.Equal(t, "30-45 minutes", EstimateLabel([]string{"30-45"}))
	assert.Equal(t, "28-38 minutes", EstimateLabel([]string{"30-45", "25-30"}))
	assert.Equal(t, "N/A", EstimateLabel(nil))
	assert.Equal(t, "N/A", EstimateLabel([]string{"junk"}))
}

func TestStageAt(t *testing.T) {
	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{name: "just placed", elapsed: 0, want: StageConfirmed},
		{name: "before preparing boundary", elapsed: 2 * time.Minute, want: StageConfirmed},
		{name: "preparing boundary is inclusive", elapsed: 3 * time.Minute, want: StagePreparing},
		{name: "before out-for-delivery boundary", elapsed: 11 * time.Minute, want: StagePreparing},
		{name: "boundary is inclusive", elapsed: 12 * time.Minute, want: StageOutForDelivery},
		{name: "thirteen minutes in", elapsed: 13 * time.Minute, want: StageOutForDelivery},
		{name: "delivered boundary", elapsed: 24 * time.Minute, want: StageDelivered},
		{name: "long past estimate", elapsed: 2 * time.Hour, want: StageDelivered},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, StageAt(createdAt, createdAt.Add(testCase.elapsed), avg))
		})
	}
}

func TestStageAt_MissingCreationTime(t *testing.T) {
	// Unknown creation time degrades to the initial stage.
	assert.Equal(t, StageConfirmed, StageAt(time.Time{}, time.Now(), 30*time.Minute))

	// A clock reading before creation also pins the initial stage.
	createdAt := time.Now().Add(time.Hour)
	assert.Equal(t, StageConfirmed, StageAt(createdAt, time.Now(), 30*time.Minute))
}

func TestStageIndexMonotonicity(t *testing.T) {
	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	previous := -1
	for elapsed := time.Duration(0); elapsed <= 40*time.Minute; elapsed += time.Minute {
		index := StageIndexAt(createdAt, createdAt.Add(elapsed), avg)
		assert.GreaterOrEqual(t, index, previous, "stage regressed at %v", elapsed)
		previous = index
	}
}

func TestNextBoundary(t *testing.T) {
	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	wait, ok := NextBoundary(createdAt, createdAt, avg)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Minute, wait)

	wait, ok = NextBoundary(createdAt, createdAt.Add(3*time.Minute), avg)
	assert.True(t, ok)
	assert.Equal(t, 9*time.Minute, wait)

	wait, ok = NextBoundary(createdAt, createdAt.Add(13*time.Minute), avg)
	assert.True(t, ok)
	assert.Equal(t, 11*time.Minute, wait)

	_, ok = NextBoundary(createdAt, createdAt.Add(25*time.Minute), avg)
	assert.False(t, ok)
}

func TestTimelineAt(t *testing.T) {
	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	timeline := TimelineAt(createdAt, createdAt.Add(13*time.Minute), avg)
	assert.Len(t, timeline, 4)
	assert.Equal(t, StageConfirmed, timeline[0].Label)
	assert.Equal(t, createdAt, timeline[0].At)
	assert.Equal(t, createdAt.Add(3*time.Minute), timeline[1].At)
	assert.Equal(t, createdAt.Add(12*time.Minute), timeline[2].At)
	assert.Equal(t, createdAt.Add(24*time.Minute), timeline[3].At)

	assert.True(t, timeline[0].Reached)
	assert.True(t, timeline[1].Reached)
	assert.True(t, timeline[2].Reached)
	assert.False(t, timeline[3].Reached)
}
