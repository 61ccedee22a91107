package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01/15/2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_RejectsISOFormat(t *testing.T) {
	_, err := ParseDate("2024-01-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MM/DD/YYYY")
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.February, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"02/01/2024"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(d.Time))
}

func TestDate_UnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"15/45/2024"`), &d)
	assert.Error(t, err)
}

func TestDate_ScanFromTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "03/04/2013", d.String())

	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, value)
}

func TestDate_ScanRejectsUnsupportedType(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan(42))
}
