/*
Copyright © 2025 The crashwx Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/crashwx/crashwx/internal/ioexport"
	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// DefaultExportPath is where export writes when --out is not given.
const DefaultExportPath = "crashwx.sqlite"

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		out         string
		minRows     int
		metricsFile string
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export plotting and training datasets to SQLite",
		Long: `Export writes the datasets read by the plotting and training tools.

Tables in the SQLite file:
  plot_rows      crash_datetime, borough, severity of accidents
                 with a known borough
  training_rows  labeled accidents with hour, day_of_week
                 (Monday=0), month and is_weekend; missing
                 borough and zip_code become 'Unknown'

When there are fewer training rows than training.min_rows,
training_rows is not written.

Examples:
  crashwx export
  crashwx export -o data/processed/crashwx.sqlite
  crashwx export --min-rows 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("min-rows") {
				cfg.Update([]config.Option{config.OptTrainingMinRows(minRows)})
			}
			err := runExport(out, metricsFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(
		&out, "out", "o", DefaultExportPath,
		"path of the SQLite file",
	)
	exportCmd.Flags().IntVar(
		&minRows, "min-rows", 0,
		"smallest training dataset worth exporting",
	)
	exportCmd.Flags().StringVar(
		&metricsFile, "metrics-file", "",
		"write Prometheus metrics to this file",
	)

	return exportCmd
}

func runExport(out, metricsFile string) error {
	ctx, cancel := signalContext()
	defer cancel()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = requireSchema(ctx, op); err != nil {
		return err
	}

	m := iometrics.New()
	exp := ioexport.New(cfg, op, ioexport.OptMetrics(m))
	if err = exp.Export(ctx, out); err != nil {
		return err
	}

	if metricsFile != "" {
		return m.WriteFile(metricsFile)
	}
	return nil
}
