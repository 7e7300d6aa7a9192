package config

import "time"

// NewWorkbookForTest creates a Workbook config for testing purposes
func NewWorkbookForTest(path, dataDir string, refreshInterval time.Duration) *Workbook {
	return &Workbook{
		path:            path,
		dataDir:         dataDir,
		refreshInterval: refreshInterval,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{
		dsn: dsn,
		env: env,
	}
}
