// Package cli implements the pawmatch CLI commands.
package cli

import "github.com/spf13/cobra"

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "pawmatch",
	Short: "Adoptable-dog matching engine",
	Long:  "Ranks adoptable dogs against adopter constraints and weighted preferences, served over HTTP or ranked offline from a feed file.",
}
