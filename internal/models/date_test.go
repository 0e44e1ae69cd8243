package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", d.String())

	_, err = ParseDate("05/01/2026")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-05"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-05", d.String())

	require.NoError(t, d.Scan("2026-02-07"))
	assert.Equal(t, "2026-02-07", d.String())

	require.NoError(t, d.Scan([]byte("2026-03-09 00:00:00")))
	assert.Equal(t, "2026-03-09", d.String())

	assert.Error(t, d.Scan(42))
}
