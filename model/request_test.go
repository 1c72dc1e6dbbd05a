package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"1", 1, false},
		{"03", 3, false},
		{"12", 12, false},
		{"march", 3, false},
		{"March", 3, false},
		{"SEP", 9, false},
		{" december ", 12, false},
		{"0", 0, true},
		{"13", 0, true},
		{"-1", 0, true},
		{"2021-03", 0, true},
		{"marc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMonth)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransaction_DecodesSeedPayload(t *testing.T) {
	payload := `{"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack",
		"category":"men's clothing","image":"https://example.com/1.jpg","sold":false,
		"dateOfSale":"2021-11-27T20:29:54+05:30"}`

	var tr Transaction
	require.NoError(t, json.Unmarshal([]byte(payload), &tr))

	assert.Equal(t, 1, tr.ID)
	assert.True(t, decimal.RequireFromString("329.85").Equal(tr.Price))
	assert.Equal(t, time.November, tr.DateOfSale.Month())
	assert.False(t, tr.Sold)

	out, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"price":329.85`)
}
