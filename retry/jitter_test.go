package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitter_WithoutJitter(t *testing.T) {
	t.Parallel()

	delay := 5 * time.Second
	assert.Equal(t, delay, WithoutJitter.apply(delay))
}

func TestJitter_FullJitter(t *testing.T) {
	t.Parallel()

	delay := 5 * time.Second

	for range 100 {
		jittered := FullJitter.apply(delay)
		assert.GreaterOrEqual(t, jittered, time.Duration(0))
		assert.LessOrEqual(t, jittered, delay)
	}
}

func TestJitter_EqualJitter(t *testing.T) {
	t.Parallel()

	delay := 5 * time.Second

	for range 100 {
		jittered := EqualJitter.apply(delay)
		assert.GreaterOrEqual(t, jittered, delay/2)
		assert.LessOrEqual(t, jittered, delay)
	}
}

func TestJitter_ZeroDelay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), FullJitter.apply(0))
}
