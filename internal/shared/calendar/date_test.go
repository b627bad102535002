package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalAcceptsBothLayouts(t *testing.T) {
	var payload struct {
		Short Date `json:"short"`
		Long  Date `json:"long"`
		Empty Date `json:"empty"`
	}
	err := json.Unmarshal([]byte(`{"short":"2021-01-01","long":"2021-01-01T10:30:00Z","empty":null}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), payload.Short.Time)
	assert.Equal(t, time.Date(2021, 1, 1, 10, 30, 0, 0, time.UTC), payload.Long.Time)
	assert.True(t, payload.Empty.IsZero())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`"01/02/2021"`), &d))
	require.Error(t, json.Unmarshal([]byte(`20210101`), &d))
}

func TestDate_Marshal(t *testing.T) {
	out, err := json.Marshal(NewDate(time.Date(1990, 1, 1, 15, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"1990-01-01"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
