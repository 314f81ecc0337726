package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapReader map[string]string

func (m mapReader) Get(key string) (string, bool) {
	val, ok := m[key]
	return val, ok
}

func TestKnownAPIKey(t *testing.T) {
	store := mapReader{
		"API_KEY_OPENAI":    "sk-111",
		"ANTHROPIC_API_KEY": "sk-222",
		"GROQ":              "sk-333",
	}

	assert.Equal(t, "sk-111", KnownAPIKey(store, "openai"))
	assert.Equal(t, "sk-222", KnownAPIKey(store, "anthropic"))
	assert.Equal(t, "sk-333", KnownAPIKey(store, "groq"))
	assert.Equal(t, NoKey, KnownAPIKey(store, "mistralai"))
}

func TestProvidersContainOpenAI(t *testing.T) {
	var found bool
	for _, p := range Providers {
		if p.Name == "OPENAI" {
			found = true
			assert.Equal(t, "OpenAI", p.Label)
		}
	}
	assert.True(t, found)
}
