// Command tempmon watches the temperature monitor's USB console and runs the
// acquisition loop in simulation.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build variables set by ldflags
var (
	buildVersion = "dev"
	buildCommit  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tempmon",
		Short: "Host companion for the RP2040 temperature monitor",
		Long: `tempmon decodes the telemetry frames the firmware prints on its USB
console and can run the firmware's acquisition loop on the host against a
simulated sensor.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	if buildCommit == "" {
		return buildVersion
	}
	return buildVersion + " (" + buildCommit + ")"
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tempmon %s %s/%s\n", versionString(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
