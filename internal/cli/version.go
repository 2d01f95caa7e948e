package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zestie-cloud/pawmatch/internal/version"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pawmatch %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
	RootCmd.AddCommand(cmd)
}
