package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"9am", TimeOfDay{9, 0}, false},
		{"12am", TimeOfDay{0, 0}, false},
		{"12pm", TimeOfDay{12, 0}, false},
		{"9:30pm", TimeOfDay{21, 30}, false},
		{"9.30am", TimeOfDay{9, 30}, false},
		{"14:00", TimeOfDay{14, 0}, false},
		{"07.45", TimeOfDay{7, 45}, false},
		{"24:00", TimeOfDay{}, true},
		{"13pm", TimeOfDay{}, true},
		{"9:60", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayOn(t *testing.T) {
	tod := TimeOfDay{Hour: 9, Minute: 15}
	got, err := tod.On("2025-06-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC), got)
	assert.Equal(t, "09:15", tod.String())
	assert.True(t, tod.Before(TimeOfDay{Hour: 9, Minute: 16}))
}
