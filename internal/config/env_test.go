package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DODGER_TEST_NAME", "value")

	assert.Equal(t, "value", GetEnv("DODGER_TEST_NAME", "fallback"))
	assert.Equal(t, "fallback", GetEnv("DODGER_TEST_UNSET", "fallback"))
}

func TestGetEnvSetButEmpty(t *testing.T) {
	t.Setenv("DODGER_TEST_EMPTY", "")

	assert.Equal(t, "", GetEnv("DODGER_TEST_EMPTY", "fallback"))

	b, err := GetEnvBool("DODGER_TEST_EMPTY", true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("DODGER_TEST_BOOL", "false")

	b, err := GetEnvBool("DODGER_TEST_BOOL", true)
	require.NoError(t, err)
	assert.False(t, b)

	t.Setenv("DODGER_TEST_BOOL", "maybe")
	b, err = GetEnvBool("DODGER_TEST_BOOL", true)
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.True(t, b)
	assert.Contains(t, err.Error(), "DODGER_TEST_BOOL")
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("DODGER_TEST_INT", "42")

	n, err := GetEnvInt64("DODGER_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = GetEnvInt64("DODGER_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	t.Setenv("DODGER_TEST_INT", "4.2")
	_, err = GetEnvInt64("DODGER_TEST_INT", 7)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("DODGER_TEST_FLOAT", "0.5")

	f, err := GetEnvFloat("DODGER_TEST_FLOAT", 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	t.Setenv("DODGER_TEST_FLOAT", "half")
	f, err = GetEnvFloat("DODGER_TEST_FLOAT", 1)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 1.0, f)
}
