package utils_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/adam.stanek/growthwalk/pkg/utils"
)

func TestSetLogLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	require.NoError(t, utils.SetLogLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.NoError(t, utils.SetLogLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetLogLevelUnknownKeepsCurrent(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	assert.Error(t, utils.SetLogLevel("loud"))
	assert.Error(t, utils.SetLogLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
