/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

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
	"github.com/crashwx/crashwx/internal/iometrics"
	"github.com/crashwx/crashwx/internal/iopopulate"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var (
		accidentsPath string
		weatherPath   string
		yearMin       int
		yearMax       int
		maxRows       int
		seed          int64
		metricsFile   string
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with weather and accident data",
		Long: `Import the daily weather and traffic collision CSV exports.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Normalizes the weather export and stores one row per date
  3. Normalizes the collision export: parses dates and times,
     drops rows without coordinates, labels severity and
     removes duplicate collisions
  4. Samples accidents down to --max-rows using --seed
  5. Joins accidents to stored weather by crash date, dropping
     accidents without weather
  6. Records the run with its row counts in ingest_runs

Rows that are already stored are skipped, so running populate
again with the same files adds nothing.

Source locations default to sources.* in the config file.

Examples:
  crashwx populate
  crashwx populate -a data/raw/nyc_crashes.csv -w data/raw/nyc_weather_daily.csv
  crashwx populate --year-min 2020 --year-max 2023
  crashwx populate --max-rows 0
  crashwx populate --metrics-file /var/lib/node_exporter/crashwx.prom`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, populateFlags{
				accidentsPath: accidentsPath,
				weatherPath:   weatherPath,
				yearMin:       yearMin,
				yearMax:       yearMax,
				maxRows:       maxRows,
				seed:          seed,
				metricsFile:   metricsFile,
			})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringVarP(
		&accidentsPath, "accidents", "a", "",
		"path to the collision CSV export",
	)
	populateCmd.Flags().StringVarP(
		&weatherPath, "weather", "w", "",
		"path to the daily weather CSV export",
	)
	populateCmd.Flags().IntVar(
		&yearMin, "year-min", 0,
		"keep crashes from this year on",
	)
	populateCmd.Flags().IntVar(
		&yearMax, "year-max", 0,
		"keep crashes up to this year",
	)
	populateCmd.Flags().IntVarP(
		&maxRows, "max-rows", "m", 0,
		"sample accidents down to this many rows (0 = keep all)",
	)
	populateCmd.Flags().Int64VarP(
		&seed, "seed", "s", 0,
		"random seed for accident sampling",
	)
	populateCmd.Flags().StringVar(
		&metricsFile, "metrics-file", "",
		"write Prometheus metrics to this file",
	)

	return populateCmd
}

type populateFlags struct {
	accidentsPath string
	weatherPath   string
	yearMin       int
	yearMax       int
	maxRows       int
	seed          int64
	metricsFile   string
}

// options converts explicitly set flags to config options.
func (f populateFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	changed := cmd.Flags().Changed

	if changed("accidents") {
		res = append(res, config.OptSourcesAccidentsPath(f.accidentsPath))
	}
	if changed("weather") {
		res = append(res, config.OptSourcesWeatherPath(f.weatherPath))
	}
	if changed("year-min") {
		res = append(res, config.OptPopulateYearMin(f.yearMin))
	}
	if changed("year-max") {
		res = append(res, config.OptPopulateYearMax(f.yearMax))
	}
	if changed("max-rows") {
		res = append(res, config.OptPopulateMaxRows(f.maxRows))
	}
	if changed("seed") {
		res = append(res, config.OptRandomSeed(f.seed))
	}
	return res
}

func runPopulate(cmd *cobra.Command, flags populateFlags) error {
	ctx, cancel := signalContext()
	defer cancel()

	if populateOpts := flags.options(cmd); len(populateOpts) > 0 {
		cfg.Update(populateOpts)
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = requireSchema(ctx, op); err != nil {
		return err
	}

	m := iometrics.New()
	populator := iopopulate.New(cfg, op, iopopulate.OptMetrics(m))

	gn.Info("Starting data population...")
	if err = populator.Populate(ctx); err != nil {
		return err
	}

	if flags.metricsFile != "" {
		if err = m.WriteFile(flags.metricsFile); err != nil {
			return err
		}
		gn.Info("Metrics written to <em>%s</em>", flags.metricsFile)
	}

	gn.Info(`Next steps:
	 - Run '<em>crashwx status</em>' to check row counts
	 - Run '<em>crashwx export</em>' to write the datasets
`)

	return nil
}
