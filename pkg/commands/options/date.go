// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/dates"
)

// DateOptions selects the date a command operates on.
type DateOptions struct {
	OnString string
}

// AddDateArgs wires the date flag; "today" is the default and the
// 6-digit and 8-digit encodings are accepted alongside the canonical
// form.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify the date, example: --on=2025-11-25, --on=20251125 or --on=251125.`)
}

// GetDate resolves the flag to a canonical date.
func (o *DateOptions) GetDate() (dates.Date, error) {
	if o.OnString == "" || o.OnString == "today" {
		return dates.Today(), nil
	}
	return dates.Parse(o.OnString)
}
