package cmd

import (
	"fmt"

	"github.com/paddlecraft/gohull/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohull",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gohull v%s\n", version.Version)
		fmt.Println("Kayak Hull Hydrostatics and Stability Tool")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
