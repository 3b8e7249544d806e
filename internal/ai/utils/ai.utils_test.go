package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		raw, err := ExtractJSONObject(`{"name":"Landing"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Landing"}`, raw)
	})

	t.Run("object surrounded by prose", func(t *testing.T) {
		raw, err := ExtractJSONObject("Sure! Here is the design:\n{\"name\":\"Landing\"}\nLet me know if you want changes.")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Landing"}`, raw)
	})

	t.Run("no braces fails deterministically", func(t *testing.T) {
		_, err := ExtractJSONObject("I could not produce a design for that request.")
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})

	t.Run("closing brace before opening brace", func(t *testing.T) {
		_, err := ExtractJSONObject("} nothing here {")
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	assert.Equal(t, "const x = 1", StripCodeFences("```tsx\nconst x = 1\n```"))
}

func TestDecodeJSONObject(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("fenced object with prose", func(t *testing.T) {
		var p payload
		err := DecodeJSONObject("Here you go:\n```json\n{\"name\":\"Landing\"}\n```", &p)
		require.NoError(t, err)
		assert.Equal(t, "Landing", p.Name)
	})

	t.Run("malformed JSON is a parse error", func(t *testing.T) {
		var p payload
		err := DecodeJSONObject(`{"name": "Landing"`, &p)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})

	t.Run("truncated value inside braces", func(t *testing.T) {
		var p payload
		err := DecodeJSONObject(`{"name": }`, &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse JSON")
	})
}
