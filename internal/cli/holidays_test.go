package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execHolidays(a *app, year, month string) (string, error) {
	cmd, out := testCmd(holidaysCmd)
	err := runHolidays(cmd, a, year, month)
	return out.String(), err
}

func TestHolidaysCurrentYear(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-02", 9, 0))

	out, err := execHolidays(a, "", "")
	require.NoError(t, err)
	assert.Contains(t, out, "CZ, 2025")
	assert.Contains(t, out, "2025-04-21  Easter Monday")
	assert.Contains(t, out, "2025-12-26")
	assert.Equal(t, 13, strings.Count(out, "\n"))
}

func TestHolidaysYearFlag(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-02", 9, 0))

	out, err := execHolidays(a, "2024", "")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-04-01  Easter Monday")

	_, err = execHolidays(a, "abc", "")
	assert.Error(t, err)
}

func TestHolidaysMonth(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-02", 9, 0))

	out, err := execHolidays(a, "", "2025-05")
	require.NoError(t, err)
	assert.Contains(t, out, "May 2025")
	assert.Contains(t, out, "Labour Day")
	assert.Contains(t, out, "Victory in Europe Day")

	out, err = execHolidays(a, "", "2025-06")
	require.NoError(t, err)
	assert.Contains(t, out, "none")

	_, err = execHolidays(a, "", "June")
	assert.Error(t, err)
}
