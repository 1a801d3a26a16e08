package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.Int64())
	assert.Equal(t, "42", id.String())
	assert.False(t, id.IsZero())

	_, err = ParseID("not-a-number")
	assert.Error(t, err)

	assert.True(t, ID(0).IsZero())
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{5000, "50.00"},
		{1, "0.01"},
		{0, "0.00"},
		{-5000, "-50.00"},
		{-1, "-0.01"},
		{123456, "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMoney(tt.cents).String())
		})
	}
}

func TestMoney_Mul(t *testing.T) {
	assert.Equal(t, NewMoney(3000), MoneyFromUnits(10).Mul(3))
	assert.Equal(t, NewMoney(0), MoneyFromUnits(10).Mul(0))
	assert.True(t, MoneyFromUnits(10).IsPositive())
	assert.False(t, NewMoney(0).IsPositive())
	assert.False(t, NewMoney(-1).IsPositive())
}

func TestMoney_UnmarshalJSON_Base64(t *testing.T) {
	// Values are base64 of the unscaled amount as a signed big-endian
	// two's-complement integer, the Connect wire form for decimals.
	tests := []struct {
		name          string
		input         string
		expectedCents int64
	}{
		{name: "50.00", input: `"E4g="`, expectedCents: 5000},
		{name: "1.00 single byte", input: `"ZA=="`, expectedCents: 100},
		{name: "zero", input: `"AA=="`, expectedCents: 0},
		{name: "1000.00 three bytes", input: `"AYag"`, expectedCents: 100000},
		{name: "negative 50.00", input: `"7Hg="`, expectedCents: -5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))
			assert.Equal(t, tt.expectedCents, m.Cents)
		})
	}
}

func TestMoney_UnmarshalJSON_Number(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`25.5`), &m))
	assert.Equal(t, int64(2550), m.Cents)

	require.NoError(t, json.Unmarshal([]byte(`-25.5`), &m))
	assert.Equal(t, int64(-2550), m.Cents)
}

func TestMoney_UnmarshalJSON_Invalid(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"not base64!!"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &m))
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewMoney(5000))
	require.NoError(t, err)
	assert.Equal(t, "50.00", string(data))
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input         string
		expectedCents int64
		expectError   bool
	}{
		{input: "10.00", expectedCents: 1000},
		{input: "10", expectedCents: 1000},
		{input: "10.5", expectedCents: 1050},
		{input: "0.99", expectedCents: 99},
		{input: "-3.50", expectedCents: -350},
		{input: " 12.34 ", expectedCents: 1234},
		{input: "abc", expectError: true},
		{input: "10.999", expectError: true},
		{input: "0.123", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMoney(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCents, m.Cents)
		})
	}
}

func TestMoney_Scan(t *testing.T) {
	var m Money

	require.NoError(t, m.Scan([]byte("12.34")))
	assert.Equal(t, int64(1234), m.Cents)

	require.NoError(t, m.Scan("50.00"))
	assert.Equal(t, int64(5000), m.Cents)

	require.NoError(t, m.Scan(int64(5)))
	assert.Equal(t, int64(500), m.Cents)

	require.NoError(t, m.Scan(float64(12.34)))
	assert.Equal(t, int64(1234), m.Cents)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, int64(0), m.Cents)

	assert.Error(t, m.Scan(true))
}

func TestMoney_Value(t *testing.T) {
	v, err := NewMoney(5000).Value()
	require.NoError(t, err)
	assert.Equal(t, "50.00", v)
}
