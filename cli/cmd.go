package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint   string
	secureConn bool
	local      bool
)

var rootCmd = &cobra.Command{
	Use:          "dsctl",
	Short:        "Dsctl locates the example files bundled with datasets",
	SilenceUsage: true,
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "localhost:10000", "datasets server endpoint")
	rootCmd.PersistentFlags().BoolVar(&secureConn, "secure", false, "connect with TLS")
	rootCmd.PersistentFlags().BoolVar(&local, "local", false, "resolve in-process instead of asking the server")

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
