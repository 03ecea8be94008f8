package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvroute/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want    zapcore.Level
		wantErr bool
	}{
		"debug":   {want: zap.DebugLevel},
		"INFO":    {want: zap.InfoLevel},
		"":        {want: zap.InfoLevel},
		"warning": {want: zap.WarnLevel},
		"error":   {want: zap.ErrorLevel},
		"loud":    {wantErr: true},
	}
	for in, tc := range cases {
		got, err := logging.ParseLevel(in)
		if tc.wantErr {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, tc.want, got, in)
	}
}

func TestNew(t *testing.T) {
	lg, err := logging.New("warn", "json")
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zap.InfoLevel))
	assert.True(t, lg.Core().Enabled(zap.WarnLevel))

	lg, err = logging.New("debug", "console")
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zap.DebugLevel))

	_, err = logging.New("info", "xml")
	assert.Error(t, err)
	_, err = logging.New("chatty", "json")
	assert.Error(t, err)
}
