package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const titleSchema = `{
  "type": "object",
  "required": ["title", "tags"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "tags": {"type": "array", "items": {"type": "string"}}
  }
}`

func TestSchemaValidateJSON(t *testing.T) {
	s := MustSchema("title", titleSchema)

	t.Run("valid", func(t *testing.T) {
		out, err := s.ValidateJSON(`{"title":"Launch","tags":["a"]}`)
		require.NoError(t, err)
		assert.Equal(t, `{"title":"Launch","tags":["a"]}`, out)
	})

	t.Run("fenced", func(t *testing.T) {
		out, err := s.ValidateJSON("```json\n{\"title\":\"Launch\",\"tags\":[]}\n```")
		require.NoError(t, err)
		assert.Equal(t, `{"title":"Launch","tags":[]}`, out)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := s.ValidateJSON(`{"title":"Launch"}`)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidResponse))
		raw, ok := RawContent(err)
		assert.True(t, ok)
		assert.Equal(t, `{"title":"Launch"}`, raw)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := s.ValidateJSON("Great decision overall.")
		require.Error(t, err)
		raw, ok := RawContent(err)
		assert.True(t, ok)
		assert.Equal(t, "Great decision overall.", raw)
	})
}

func TestNewSchemaRejectsInvalidDefinition(t *testing.T) {
	_, err := NewSchema("bad", `{"type": 12}`)
	assert.Error(t, err)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&RateLimitError{Err: errors.New("429")}))
	assert.True(t, IsTransient(&UnavailableError{Err: errors.New("503")}))
	assert.False(t, IsTransient(&InvalidResponseError{Err: errors.New("bad")}))
	assert.False(t, IsTransient(errors.New("plain")))
}
