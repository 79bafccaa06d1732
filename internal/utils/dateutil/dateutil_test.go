package dateutil_test

import (
	"testing"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/utils/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTime_UsesLocalCalendarDate(t *testing.T) {
	// 23:30 local on the 1st must stay the 1st regardless of what the UTC
	// representation of that instant is.
	local := time.Date(2025, 8, 1, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-08-01", dateutil.FromTime(local))
}

func TestNormalize_TakesLeadingDateVerbatim(t *testing.T) {
	assert.Equal(t, "2025-08-01", dateutil.Normalize("2025-08-01T00:00:00Z"))
	assert.Equal(t, "2025-08-01", dateutil.Normalize("2025-08-01"))
	assert.Equal(t, "2025-08", dateutil.Normalize("2025-08"))
}

func TestWeekStart_SundayAligned(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-08-06", "2025-08-03"}, // Wednesday -> preceding Sunday
		{"2025-08-03", "2025-08-03"}, // Sunday maps to itself
		{"2025-08-09", "2025-08-03"}, // Saturday -> same week's Sunday
		{"2025-08-10", "2025-08-10"}, // next Sunday starts a new bucket
	}
	for _, tt := range tests {
		got, err := dateutil.WeekStart(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "week start of %s", tt.date)
	}
}

func TestMonthKey(t *testing.T) {
	got, err := dateutil.MonthKey("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12", got)
}

func TestInRange_InclusiveBounds(t *testing.T) {
	assert.True(t, dateutil.InRange("2025-08-01", "2025-08-01", "2025-08-14"))
	assert.True(t, dateutil.InRange("2025-08-14", "2025-08-01", "2025-08-14"))
	assert.False(t, dateutil.InRange("2025-08-15", "2025-08-01", "2025-08-14"))
	assert.True(t, dateutil.InRange("2025-08-05T12:00:00Z", "2025-08-01", "2025-08-14"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, dateutil.IsValid("2025-02-28"))
	assert.False(t, dateutil.IsValid("2025-02-30"))
	assert.False(t, dateutil.IsValid("not-a-date"))
}
