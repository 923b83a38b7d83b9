package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAuth(t *testing.T) {
	assert.False(t, Config{}.HasAuth())
	assert.True(t, Config{JWTSecret: "secret"}.HasAuth())
}
