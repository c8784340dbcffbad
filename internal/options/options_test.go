package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	level int
	name  string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.level = 3 }),
		New(func(c *testConfig) error {
			c.name = "frame"
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.level)
	require.Equal(t, "frame", cfg.name)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	errBad := errors.New("bad option")
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.level = 1 }),
		New(func(*testConfig) error { return errBad }),
		NoError(func(c *testConfig) { c.level = 9 }),
	)
	require.ErrorIs(t, err, errBad)
	require.Equal(t, 1, cfg.level)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{level: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.level)
}
