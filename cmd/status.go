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
	"context"
	"fmt"
	"time"

	"github.com/crashwx/crashwx/pkg/db"
	"github.com/crashwx/crashwx/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const mismatchQuery = `
SELECT count(*)
  FROM accidents a
  JOIN weather w ON w.weather_id = a.weather_id
  WHERE w.date <> a.crash_date`

const runsQuery = `
SELECT id, finished_at, weather_inserted, accidents_inserted
  FROM ingest_runs
  ORDER BY finished_at DESC
  LIMIT $1`

// getStatusCmd returns the status command.
func getStatusCmd() *cobra.Command {
	var runsNum int

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show row counts and recent ingest runs",
		Long: `Status prints the number of stored weather days and accidents,
checks that every accident is joined to the weather of its own
date and lists the most recent populate runs.

Examples:
  crashwx status
  crashwx status --runs 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStatus(runsNum)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statusCmd.Flags().IntVarP(&runsNum, "runs", "r", 5,
		"number of recent ingest runs to show")

	return statusCmd
}

func runStatus(runsNum int) error {
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

	for _, table := range schema.TableNames() {
		n, err := op.Count(ctx, table)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %12s\n", table, humanize.Comma(n))
	}

	var mismatched int64
	err = op.Pool().QueryRow(ctx, mismatchQuery).Scan(&mismatched)
	if err != nil {
		return err
	}
	if mismatched > 0 {
		gn.Warn("<em>%s</em> accidents are joined to weather of another date",
			humanize.Comma(mismatched))
	} else {
		gn.Info("Every accident is joined to the weather of its date")
	}

	return printRuns(ctx, op, runsNum)
}

func printRuns(ctx context.Context, op db.Operator, limit int) error {
	rows, err := op.Pool().Query(ctx, runsQuery, limit)
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Println("\nRecent ingest runs:")
	for rows.Next() {
		var (
			id                 uuid.UUID
			finished           time.Time
			weather, accidents int
		)
		if err = rows.Scan(&id, &finished, &weather, &accidents); err != nil {
			return err
		}
		fmt.Printf("  %s  %s  weather %s, accidents %s\n",
			finished.Format(time.DateTime),
			id,
			humanize.Comma(int64(weather)),
			humanize.Comma(int64(accidents)),
		)
	}
	return rows.Err()
}
