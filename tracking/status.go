// Package tracking derives an order's delivery status from the time elapsed
// since it was placed and the delivery-time ranges its items declare.
package tracking

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	StageConfirmed      = "Order Confirmed"
	StagePreparing      = "Preparing Your Order"
	StageOutForDelivery = "Out for Delivery"
	StageDelivered      = "Delivered"
)

// Stages is the delivery lifecycle in order.
var Stages = []string{StageConfirmed, StagePreparing, StageOutForDelivery, StageDelivered}

// DefaultEstimate is used when no item declares a parseable delivery-time range.
const DefaultEstimate = 30 * time.Minute

// Stage start boundaries as fractions of the average estimated duration.
// Preparing begins at 10% of the estimate, Out for Delivery at 40%,
// Delivered at 80%. The estimate itself (100%) marks expected completion.
var stageFractions = []float64{0, 0.1, 0.4, 0.8}

// ParseRange parses a delivery-time range like "25-30" (minutes). Trailing
// text such as " min" on the max side is tolerated.
func ParseRange(s string) (min, max float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	maxField := strings.Fields(strings.TrimSpace(parts[1]))
	if len(maxField) == 0 {
		return 0, 0, false
	}
	max, errMax := strconv.ParseFloat(maxField[0], 64)
	if errMin != nil || errMax != nil {
		return 0, 0, false
	}
	return min, max, true
}

// AverageEstimate averages the midpoints of the parseable ranges. Items with
// no range or a malformed one are skipped; if none parse, DefaultEstimate is
// returned.
func AverageEstimate(ranges []string) time.Duration {
	var sum float64
	var count int
	for _, r := range ranges {
		if r == "" {
			continue
		}
		min, max, ok := ParseRange(r)
		if !ok {
			continue
		}
		sum += (min + max) / 2
		count++
	}
	if count == 0 {
		return DefaultEstimate
	}
	minutes := sum / float64(count)
	return time.Duration(minutes * float64(time.Minute))
}

// EstimateLabel renders the averaged range for display, e.g. "30-45 minutes".
// Returns "N/A" when no range parses.
func EstimateLabel(ranges []string) string {
	var totalMin, totalMax float64
	var count int
	for _, r := range ranges {
		if r == "" {
			continue
		}
		min, max, ok := ParseRange(r)
		if !ok {
			continue
		}
		totalMin += min
		totalMax += max
		count++
	}
	if count == 0 {
		return "N/A"
	}
	avgMin := math.Round(totalMin / float64(count))
	avgMax := math.Round(totalMax / float64(count))
	return fmt.Sprintf("%d-%d minutes", int(avgMin), int(avgMax))
}

// StageIndexAt returns the index into Stages for the given creation time and
// clock reading. The result is the highest-indexed stage whose boundary has
// been reached (boundaries are inclusive). A zero creation time is treated
// as a freshly placed order.
func StageIndexAt(createdAt, now time.Time, avg time.Duration) int {
	if createdAt.IsZero() {
		log.Printf("tracking: order has no creation time, treating as freshly created")
		return 0
	}
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return 0
	}
	if avg <= 0 {
		avg = DefaultEstimate
	}
	index := 0
	for i, fraction := range stageFractions {
		boundary := time.Duration(fraction * float64(avg))
		if elapsed >= boundary {
			index = i
		}
	}
	return index
}

// StageAt returns the current stage label.
func StageAt(createdAt, now time.Time, avg time.Duration) string {
	return Stages[StageIndexAt(createdAt, now, avg)]
}

// NextBoundary returns how long until the next stage begins. ok is false
// once the order has reached Delivered.
func NextBoundary(createdAt, now time.Time, avg time.Duration) (time.Duration, bool) {
	index := StageIndexAt(createdAt, now, avg)
	if index >= len(Stages)-1 {
		return 0, false
	}
	if createdAt.IsZero() {
		createdAt = now
	}
	if avg <= 0 {
		avg = DefaultEstimate
	}
	boundary := createdAt.Add(time.Duration(stageFractions[index+1] * float64(avg)))
	wait := boundary.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return wait, true
}

// TimelineEntry is one row of the delivery-status timeline.
type TimelineEntry struct {
	Label   string    `json:"label"`
	At      time.Time `json:"at"`
	Reached bool      `json:"reached"`
}

// TimelineAt builds the four-stage timeline for an order.
func TimelineAt(createdAt, now time.Time, avg time.Duration) []TimelineEntry {
	if avg <= 0 {
		avg = DefaultEstimate
	}
	current := StageIndexAt(createdAt, now, avg)
	timeline := make([]TimelineEntry, len(Stages))
	for i, label := range Stages {
		at := createdAt
		if !createdAt.IsZero() {
			at = createdAt.Add(time.Duration(stageFractions[i] * float64(avg)))
		}
		timeline[i] = TimelineEntry{Label: label, At: at, Reached: i <= current}
	}
	return timeline
}
