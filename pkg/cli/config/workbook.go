package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/safework-lab/jhaboard/pkg/service/gcs"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// preferredWorkbook is picked first when scanning a data directory
const preferredWorkbook = "JHA by Division.xlsx"

// Workbook holds CLI flags for the spreadsheet source
type Workbook struct {
	path            string
	dataDir         string
	refreshInterval time.Duration
}

// Flags returns CLI flags for workbook configuration
func (x *Workbook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workbook",
			Aliases:     []string{"w"},
			Usage:       "Workbook path or gs://bucket/object URL (overrides data-dir discovery)",
			Sources:     cli.EnvVars("JHABOARD_WORKBOOK"),
			Destination: &x.path,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory scanned for a workbook when --workbook is not set",
			Value:       ".",
			Sources:     cli.EnvVars("JHABOARD_DATA_DIR"),
			Destination: &x.dataDir,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Workbook change polling interval (0 disables auto reload)",
			Value:       time.Minute,
			Sources:     cli.EnvVars("JHABOARD_REFRESH_INTERVAL"),
			Destination: &x.refreshInterval,
		},
	}
}

// RefreshInterval returns the configured polling interval
func (x *Workbook) RefreshInterval() time.Duration {
	return x.refreshInterval
}

// Configure resolves the workbook source. An explicit --workbook wins;
// otherwise the data directory is scanned, preferring the well-known
// workbook name over the first spreadsheet found.
func (x *Workbook) Configure(ctx context.Context) (interfaces.WorkbookSource, error) {
	if x.path != "" {
		if strings.HasPrefix(x.path, "gs://") {
			src, err := gcs.New(ctx, x.path)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to initialize gcs workbook source")
			}
			logging.Default().Info("Using GCS workbook", "url", x.path)
			return src, nil
		}

		logging.Default().Info("Using workbook file", "path", x.path)
		return excel.NewFileSource(x.path), nil
	}

	path, err := discoverWorkbook(x.dataDir)
	if err != nil {
		return nil, err
	}
	logging.Default().Info("Discovered workbook", "path", path)
	return excel.NewFileSource(path), nil
}

func discoverWorkbook(dir string) (string, error) {
	preferred := filepath.Join(dir, preferredWorkbook)
	if _, err := os.Stat(preferred); err == nil {
		return preferred, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to scan data directory", goerr.V("dir", dir))
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".xlsx", ".xlsm":
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	if len(candidates) == 0 {
		return "", goerr.Wrap(ErrWorkbookNotFound, "no spreadsheet in data directory", goerr.V("dir", dir))
	}

	sort.Strings(candidates)
	return candidates[0], nil
}

// LogValue renders the workbook config for startup logging
func (x Workbook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("data_dir", x.dataDir),
		slog.Duration("refresh_interval", x.refreshInterval),
	)
}
