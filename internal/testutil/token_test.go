package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTokenGenerator_SameToken(t *testing.T) {
	gen := NewFixedTokenGenerator("run-123")
	assert.Equal(t, "run-123", gen.Generate())
	assert.Equal(t, "run-123", gen.Generate())
}

func TestFixedTokenGenerator_EmptyUsesDefault(t *testing.T) {
	gen := NewFixedTokenGenerator("")
	assert.Equal(t, DefaultRunToken, gen.Generate())
}
