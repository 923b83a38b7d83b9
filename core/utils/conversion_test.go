package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64(42))
	assert.Equal(t, int64(42), ToInt64(int64(42)))
	assert.Equal(t, int64(42), ToInt64(float64(42))) // JSON number
	assert.Equal(t, int64(287922816), ToInt64("287922816"))
	assert.Equal(t, int64(0), ToInt64("not a number"))
	assert.Equal(t, int64(7), ToInt64([]byte("7")))
}

func TestToInt32(t *testing.T) {
	assert.Equal(t, int32(1500), ToInt32(float64(1500)))
	assert.Equal(t, int32(-1), ToInt32("-1"))
}
