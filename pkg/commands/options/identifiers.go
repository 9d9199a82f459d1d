package options

import (
	"github.com/spf13/cobra"
)

// IDOptions captures task id selection and display.
type IDOptions struct {
	ID     string
	ShowID bool
}

// AddShowIDArgs registers the flag that prints task ids in listings.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show task ids.")
}
