package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_DecodesNumberAndEncodesUnquoted(t *testing.T) {
	var c Coin
	require.NoError(t, json.Unmarshal([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":65847.23}`), &c))
	require.NotNil(t, c.CurrentPrice)
	assert.Equal(t, "65847.23", c.CurrentPrice.String())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":65847.23}`, string(out))
}

func TestPrice_NullPriceIsOmitted(t *testing.T) {
	var c Coin
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","symbol":"x","name":"X","current_price":null}`), &c))
	assert.Nil(t, c.CurrentPrice)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "current_price")
}

func TestNewPriceFromString(t *testing.T) {
	p, err := NewPriceFromString("0.00001234")
	require.NoError(t, err)
	assert.Equal(t, "0.00001234", p.String())

	_, err = NewPriceFromString("not-a-number")
	assert.Error(t, err)
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.False(t, info.IsReleased())

	info = NewAppBuildInfo("1.2.3", "2026-01-01", "abc")
	assert.True(t, info.IsReleased())
	assert.Equal(t, "1.2.3", info.BuildVersion())
}
