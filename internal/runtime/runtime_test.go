package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment(true, false)
	assert.True(t, env.IsContainerized())
	assert.False(t, env.IsDevelopment())
}

func TestSetRootPasswordOutsideContainer(t *testing.T) {
	env := NewEnvironment(false, true)

	err := env.SetRootPassword("secret")
	assert.ErrorIs(t, err, ErrNotContainerized)
}
