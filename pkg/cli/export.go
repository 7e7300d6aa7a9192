package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/cli/config"
	"github.com/safework-lab/jhaboard/pkg/domain/model"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/repository/memory"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/safework-lab/jhaboard/pkg/usecase"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdExport() *cli.Command {
	var sheet string
	var division string
	var risk string
	var search string
	var formats []string
	var outDir string
	var appCfg config.AppConfig
	var workbookCfg config.Workbook

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "sheet",
			Aliases:     []string{"s"},
			Usage:       "Sheet to export (required)",
			Required:    true,
			Destination: &sheet,
		},
		&cli.StringFlag{
			Name:        "division",
			Usage:       "Filter by division",
			Destination: &division,
		},
		&cli.StringFlag{
			Name:        "risk",
			Usage:       "Filter by risk level",
			Destination: &risk,
		},
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"q"},
			Usage:       "Filter by case-insensitive search across all columns",
			Destination: &search,
		},
		&cli.StringSliceFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output formats [csv|xlsx|pdf] (can be specified multiple times, omit for all)",
			Destination: &formats,
		},
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Output directory",
			Value:       ".",
			Destination: &outDir,
		},
	}

	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, workbookCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export a filtered sheet view without starting the server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			dashboard, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			source, err := workbookCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve workbook source")
			}

			parsedFormats, err := parseFormats(formats)
			if err != nil {
				return err
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			loader := excel.NewLoader(dashboard)
			uc := usecase.New(repo,
				usecase.WithDashboard(dashboard),
				usecase.WithReloader(loader, source),
			)
			if _, err := uc.Reload.Reload(ctx); err != nil {
				return goerr.Wrap(err, "failed to load workbook")
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outDir))
			}

			sheetName := types.SheetName(sheet)
			query := model.Query{
				Division: division,
				Risk:     risk,
				Search:   search,
			}

			eg, ctx := errgroup.WithContext(ctx)
			for _, format := range parsedFormats {
				eg.Go(func() error {
					path := filepath.Join(outDir, format.Filename())
					f, err := os.Create(path)
					if err != nil {
						return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
					}

					if err := writeExportFile(ctx, uc, f, format, sheetName, query); err != nil {
						_ = f.Close()
						return err
					}
					if err := f.Close(); err != nil {
						return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
					}

					logger.Info("Export written", "path", path, "format", format)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			entries, err := uc.Export.Recent(ctx, len(parsedFormats))
			if err != nil {
				return goerr.Wrap(err, "failed to read export log")
			}
			for _, entry := range entries {
				logger.Info("Export recorded",
					"format", entry.Format,
					"sheet", entry.Sheet,
					"rows", entry.RowCount,
				)
			}

			return nil
		},
	}
}

func parseFormats(raw []string) ([]types.ExportFormat, error) {
	if len(raw) == 0 {
		return types.AllExportFormats(), nil
	}

	formats := make([]types.ExportFormat, 0, len(raw))
	for _, s := range raw {
		format, err := types.ParseExportFormat(s)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

func writeExportFile(ctx context.Context, uc *usecase.UseCases, w io.Writer, format types.ExportFormat, sheet types.SheetName, q model.Query) error {
	switch format {
	case types.ExportFormatCSV:
		return uc.Export.WriteCSV(ctx, w, sheet, q)
	case types.ExportFormatXLSX:
		return uc.Export.WriteXLSX(ctx, w, sheet, q)
	default:
		return uc.Export.WritePDF(ctx, w, sheet, q)
	}
}
