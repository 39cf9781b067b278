package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadUnmarshal(t *testing.T) {
	body := `{
		"name": "Milk",
		"category": null,
		"quantity": "5",
		"price": 12.5
	}`

	var payload Payload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.True(t, payload.Name.IsSet())
	assert.True(t, payload.Name.Present())

	// explicit null behaves like an absent field
	assert.False(t, payload.Category.Present())

	assert.False(t, payload.ManufacturingDate.IsSet())

	qty, err := payload.Quantity.Int()
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	price, err := payload.Price.Float()
	require.NoError(t, err)
	assert.Equal(t, 12.5, price)
}

func TestValuePresent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
	}{
		{"string", `"Milk"`, true},
		{"empty string", `""`, false},
		{"string zero", `"0"`, true},
		{"number", `5`, true},
		{"number zero", `0`, false},
		{"float zero", `0.0`, false},
		{"negative number", `-1`, true},
		{"true", `true`, true},
		{"false", `false`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, v.UnmarshalJSON([]byte(tt.raw)))
			assert.Equal(t, tt.present, v.Present())
		})
	}
}

func TestValueInt(t *testing.T) {
	t.Run("string must be whole", func(t *testing.T) {
		v := StringValue("5.5")
		_, err := v.Int()
		assert.Error(t, err)
	})

	t.Run("number truncates", func(t *testing.T) {
		v := NumberValue("5.9")
		got, err := v.Int()
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("garbage", func(t *testing.T) {
		v := StringValue("five")
		_, err := v.Int()
		assert.Error(t, err)
	})
}

func TestPayloadField(t *testing.T) {
	payload := Payload{Name: StringValue("Milk")}

	assert.True(t, payload.Field("name").Present())
	assert.False(t, payload.Field("category").IsSet())
	assert.False(t, payload.Field("unknown").IsSet())
}
