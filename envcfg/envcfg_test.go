package envcfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("ENVCFG_TEST_STRING", "hello")

	assert.Equal(t, "hello", String("ENVCFG_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", String("ENVCFG_TEST_STRING_MISSING", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("ENVCFG_TEST_INT", "42")
	t.Setenv("ENVCFG_TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, Int("ENVCFG_TEST_INT", 7))
	assert.Equal(t, 7, Int("ENVCFG_TEST_INT_BAD", 7))
	assert.Equal(t, 7, Int("ENVCFG_TEST_INT_MISSING", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("ENVCFG_TEST_BOOL_TRUE", "true")
	t.Setenv("ENVCFG_TEST_BOOL_ONE", "1")
	t.Setenv("ENVCFG_TEST_BOOL_BAD", "yep")

	assert.True(t, Bool("ENVCFG_TEST_BOOL_TRUE", false))
	assert.True(t, Bool("ENVCFG_TEST_BOOL_ONE", false))
	assert.False(t, Bool("ENVCFG_TEST_BOOL_BAD", false))
	assert.True(t, Bool("ENVCFG_TEST_BOOL_MISSING", true))
}

func TestFloat(t *testing.T) {
	t.Setenv("ENVCFG_TEST_FLOAT", "1.5")

	assert.InDelta(t, 1.5, Float("ENVCFG_TEST_FLOAT", 2.0), 0.0001)
	assert.InDelta(t, 2.0, Float("ENVCFG_TEST_FLOAT_MISSING", 2.0), 0.0001)
}

func TestDuration(t *testing.T) {
	t.Setenv("ENVCFG_TEST_DURATION", "90s")
	t.Setenv("ENVCFG_TEST_DURATION_BARE", "30")
	t.Setenv("ENVCFG_TEST_DURATION_BAD", "soon")

	assert.Equal(t, 90*time.Second, Duration("ENVCFG_TEST_DURATION", time.Minute))
	assert.Equal(t, 30*time.Second, Duration("ENVCFG_TEST_DURATION_BARE", time.Minute))
	assert.Equal(t, time.Minute, Duration("ENVCFG_TEST_DURATION_BAD", time.Minute))
	assert.Equal(t, time.Minute, Duration("ENVCFG_TEST_DURATION_MISSING", time.Minute))
}
