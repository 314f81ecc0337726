package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelegationChainPropagation(t *testing.T) {
	ctx := NewContext(Config{ChatModelName: "gpt-4o"})

	// build a three-deep chain
	sub := ctx.Root().Delegate()
	subsub := sub.Delegate()
	assert.Equal(t, "gpt-4o", subsub.Config().ChatModelName)

	ctx.SetConfig(Config{ChatModelName: "gpt-4.1"})

	assert.Equal(t, "gpt-4.1", ctx.Root().Config().ChatModelName)
	assert.Equal(t, "gpt-4.1", sub.Config().ChatModelName)
	assert.Equal(t, "gpt-4.1", subsub.Config().ChatModelName)
	assert.Nil(t, subsub.Subordinate())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	ctx := NewContext(Config{})
	r.Add(ctx)

	got, ok := r.Get(ctx.ID)
	assert.True(t, ok)
	assert.Same(t, ctx, got)

	var count int
	r.Range(func(*Context) bool {
		count++
		return true
	})
	assert.Equal(t, 1, count)

	r.Remove(ctx.ID)
	_, ok = r.Get(ctx.ID)
	assert.False(t, ok)
}
