package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"picotemp/host/monitor"
)

func watchCmd() *cobra.Command {
	var (
		configPath string
		device     string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print readings from the firmware console",
		Long: `Open the firmware's USB console and print every telemetry frame.

Examples:
  # Watch with default settings
  tempmon watch --device /dev/ttyACM0

  # Stop after ten readings, settings from a file
  tempmon watch --config tempmon.yaml --count 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := monitor.Load(configPath)
			if err != nil {
				return err
			}
			if device != "" {
				settings.Device = device
			}

			m, err := monitor.ConnectWithConfig(settings.SerialConfig())
			if err != nil {
				return err
			}
			defer m.Close()

			out := cmd.OutOrStdout()
			if settings.ShowConsole {
				m.OnConsole = func(line string) { fmt.Fprintf(out, "# %s\n", line) }
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", settings.Device)
			for n := 0; count == 0 || n < count; n++ {
				r, err := m.Next(ctx)
				if errors.Is(err, context.Canceled) {
					break
				}
				if err != nil {
					return err
				}
				line := r.String()
				if settings.AlarmCelsius != 0 && r.Celsius() >= settings.AlarmCelsius {
					line += "  ALARM"
				}
				fmt.Fprintln(out, line)
			}

			st := m.Stats()
			fmt.Fprintf(out, "%d frames, %d bad, %d console lines, %d overflows\n",
				st.Frames, st.BadFrames, st.Console, st.Overflows)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML settings file")
	cmd.Flags().StringVar(&device, "device", "", "Serial device path (overrides settings)")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many readings (0 = forever)")

	return cmd
}
