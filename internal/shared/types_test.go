package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(1967, time.March, 25)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1967-03-25"`, string(data))
}

func TestDateMarshalJSONZero(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1946-08-20"`), &d))
	assert.Equal(t, NewDate(1946, time.August, 20), d)
}

func TestDateUnmarshalJSONInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"20-08-1946"`), &d)
	assert.Error(t, err)
}

func TestDateUnmarshalJSONNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2000, time.January, 1), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateBefore(t *testing.T) {
	assert.True(t, NewDate(1895, time.December, 27).Before(NewDate(1895, time.December, 28)))
	assert.False(t, NewDate(1895, time.December, 28).Before(NewDate(1895, time.December, 28)))
}
