package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"picotemp/config"
	"picotemp/core"
	"picotemp/host/sim"
)

func simulateCmd() *cobra.Command {
	var (
		raw       []int
		cycles    int
		boardPath string
		delay     time.Duration
		ascii     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the acquisition loop against a simulated sensor",
		Long: `Run the firmware's acquisition loop on the host. Each cycle the simulated
sensor returns a batch of identical raw ADC codes taken in turn from --raw.

Examples:
  # One cycle, draw the frame
  tempmon simulate --raw 100

  # Three cycles on a 128x32 panel described by a board file
  tempmon simulate --raw 100,812,876 --cycles 3 --board board.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if boardPath != "" {
				data, err := os.ReadFile(boardPath)
				if err != nil {
					return fmt.Errorf("read board file: %w", err)
				}
				if cfg, err = config.LoadConfig(data); err != nil {
					return fmt.Errorf("board file %s: %w", boardPath, err)
				}
			}

			codes := make([]core.ADCValue, 0, len(raw))
			for _, v := range raw {
				if v < 0 || v > core.ADCMax {
					return fmt.Errorf("raw code %d outside 0..%d", v, core.ADCMax)
				}
				codes = append(codes, core.ADCValue(v))
			}
			sampler := sim.NewSampler(codes...)
			sampler.Delay = delay

			out := cmd.OutOrStdout()
			res, err := sim.Run(cfg, sampler, cycles, out)
			if err != nil {
				return err
			}

			if ascii {
				for i, frame := range res.Panel.Frames()[1:] {
					r := res.Readings[i]
					fmt.Fprintf(out, "cycle %d: raw %d, %s\n", i+1, r.Raw, core.AppendTemperature(nil, r.Celsius))
					if err := sim.WriteASCII(out, frame, cfg.DisplayWidth, cfg.DisplayHeight); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&raw, "raw", []int{100}, "Raw ADC codes, one per cycle, repeated")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "Number of acquisition cycles")
	cmd.Flags().StringVar(&boardPath, "board", "", "JSON board configuration")
	cmd.Flags().DurationVar(&delay, "capture-delay", 0, "Simulated conversion time per batch")
	cmd.Flags().BoolVar(&ascii, "ascii", true, "Print each rendered frame")

	return cmd
}
