package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
)

func TestDate_JSON(t *testing.T) {
	d := dto.NewDate(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-10"`, string(b))

	b, err = json.Marshal(dto.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDate_UnmarshalAceptaFechaYRFC3339(t *testing.T) {
	var in struct {
		Date dto.Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-10"}`), &in))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), in.Date.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-10T15:30:00Z"}`), &in))
	assert.Equal(t, "2024-03-10", in.Date.Format("2006-01-02"))
	assert.Zero(t, in.Date.Hour())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &in))
	assert.True(t, in.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"10/03/2024"}`), &in))
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, dto.PageRequest{Limit: 20, Offset: 0}, p)

	p = dto.PageRequest{Limit: 1000, Offset: -5}
	p.DefaultPage()
	assert.Equal(t, dto.PageRequest{Limit: 100, Offset: 0}, p)
}
