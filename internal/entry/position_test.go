package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimePositionUTC(t *testing.T) {
	assert.Equal(t, 0.0, TimePosition(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 50.0, TimePosition(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 75.0, TimePosition(time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)))
}

func TestSpanWidthUTC(t *testing.T) {
	start := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 25.0, SpanWidth(TimeEntry{Start: start, End: &end}, end))
	assert.Equal(t, 50.0, SpanWidth(TimeEntry{Start: start}, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)))
}

func TestSpanWidthPastMidnightClamps(t *testing.T) {
	start := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, SpanWidth(TimeEntry{Start: start, End: &end}, end))
}
