package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/cli/config"
	"github.com/safework-lab/jhaboard/pkg/domain/types"
	"github.com/safework-lab/jhaboard/pkg/service/excel"
	"github.com/safework-lab/jhaboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdInspect() *cli.Command {
	var appCfg config.AppConfig
	var workbookCfg config.Workbook

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, workbookCfg.Flags()...)

	return &cli.Command{
		Name:    "inspect",
		Aliases: []string{"i"},
		Usage:   "Validate configuration and report the workbook structure",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			dashboard, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}
			logger.Info("Configuration validation passed",
				"title", dashboard.Title,
				"risk_order", dashboard.RiskOrder,
			)

			source, err := workbookCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve workbook source")
			}

			workbook, err := excel.NewLoader(dashboard).Load(ctx, source)
			if err != nil {
				return goerr.Wrap(err, "failed to load workbook", goerr.V("source", source.String()))
			}

			total := 0
			for _, sheet := range workbook.Sheets {
				total += sheet.Rows

				roles := map[types.ColumnRole]string{}
				for _, col := range sheet.Columns {
					if col.Role == types.ColumnRoleOther {
						continue
					}
					if _, ok := roles[col.Role]; !ok {
						roles[col.Role] = col.Header
					}
				}

				logger.Info("Sheet loaded",
					"name", sheet.Name,
					"rows", sheet.Rows,
					"columns", len(sheet.Columns),
					"division_column", roles[types.ColumnRoleDivision],
					"risk_column", roles[types.ColumnRoleRisk],
					"hazard_column", roles[types.ColumnRoleHazard],
					"control_column", roles[types.ColumnRoleControl],
				)

				if roles[types.ColumnRoleDivision] == "" && roles[types.ColumnRoleRisk] == "" {
					logger.Warn("Sheet has no division or risk column, charts will be unavailable",
						"name", sheet.Name,
					)
				}
			}

			logger.Info("Workbook inspection passed",
				"source", source.String(),
				"sheets", len(workbook.Sheets),
				"records", total,
			)
			return nil
		},
	}
}
