package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", "PROD", ""} {
		t.Run("mode "+mode, func(t *testing.T) {
			log, err := New(mode)
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Info("info message", "key", "value")
			log.Warn("warn message", "count", 0)
			log.Sync()
		})
	}
}
