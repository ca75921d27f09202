package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserTime_RFC3339(t *testing.T) {
	got, err := ParseUserTime("2025-03-20T10:30:00Z", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 10, 30, 0, 0, time.UTC), got)
}

func TestParseUserTime_DateOnly(t *testing.T) {
	start, err := ParseUserTime("2025-03-20", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), start)

	end, err := ParseUserTime("2025-03-20", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestParseUserTime_EpochMillis(t *testing.T) {
	got, err := ParseUserTime("1742466600000", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1742466600000), got.UnixMilli())
}

func TestParseUserTime_Invalid(t *testing.T) {
	_, err := ParseUserTime("20/03/2025", false)
	assert.Error(t, err)
}

func TestParseUserMillis(t *testing.T) {
	got, err := ParseUserMillis("2025-03-20T00:00:00Z", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC).UnixMilli(), got)
}
