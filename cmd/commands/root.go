package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Global flags
var (
	debugMode  bool
	apiTimeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "firebaseexport",
	Short: "Export a live Firebase project as a Terraform configuration",
	Long: `Firebaseexport snapshots a live Firebase project's configuration and
content into a Terraform JSON document that can provision an equivalent
project: enabled APIs, the Firestore database and its documents, the
security rules, and the Identity Platform provider configuration.`,
}

// NewRootCmd creates a new root command
func NewRootCmd() *cobra.Command {
	rootCmd.Version = Version

	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 30*time.Second, "Timeout applied to every API call")
}
