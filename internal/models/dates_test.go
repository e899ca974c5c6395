package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValueUsesDayLayout(t *testing.T) {
	d := NewDate(time.Date(2025, 3, 9, 17, 45, 0, 0, time.Local))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", v)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-12-25"))
	assert.Equal(t, "2024-12-25", d.String())

	require.NoError(t, d.Scan([]byte("2024-01-02 08:00:00")))
	assert.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan(time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-07-04", d.String())

	require.NoError(t, d.Scan("garbage"))
	assert.Equal(t, Today().String(), d.String())
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{time.Date(2025, 6, 1, 3, 4, 5, 0, time.UTC)}

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 03:04:05", v)

	var back Timestamp
	require.NoError(t, back.Scan(v))
	assert.True(t, ts.Equal(back.Time))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Filed  Date  `json:"filed"`
		Pickup *Date `json:"pickup"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"filed":"2025-02-14","pickup":null}`), &p))
	assert.Equal(t, "2025-02-14", p.Filed.String())
	assert.Nil(t, p.Pickup)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"filed":"2025-02-14","pickup":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"filed":"14/02/2025"}`), &p))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Juan Dela Cruz", User{FirstName: "Juan", LastName: "Dela Cruz"}.DisplayName())
	assert.Equal(t, "Juan", User{FirstName: "Juan"}.DisplayName())
}
