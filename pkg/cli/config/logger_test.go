package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/cli/config"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	// keep the process logger intact for other tests
	restore := logging.Default()
	defer logging.SetDefault(restore)

	t.Run("valid console config", func(t *testing.T) {
		cfg := config.NewLoggerForTest("debug", "console", "stderr")
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		cfg := config.NewLoggerForTest("info", "json", path)
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Info("written to file")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.Bool(t, len(data) > 0).True()
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "stdout")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})
}

func TestSentryConfigureDisabled(t *testing.T) {
	cfg := config.NewSentryForTest("", "")
	gt.Bool(t, cfg.IsConfigured()).False()

	closer, err := cfg.Configure()
	gt.NoError(t, err).Required()
	closer()
}
