package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
	"github.com/Jonahss/appium-ios-driver/internal/device"
	"github.com/Jonahss/appium-ios-driver/internal/ui"
	"github.com/Jonahss/appium-ios-driver/internal/wait"
	"github.com/spf13/cobra"
)

func udidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "udid",
		Short: "Work with real-device identifiers",
	}

	cmd.AddCommand(udidDetectCmd())

	return cmd
}

func udidDetectCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Probe for the udid of an attached device",
		Long:  `Run the idevice_id probe and print the first attached device identifier.`,
		Example: `  iosresolve udid detect
  iosresolve udid detect --timeout 30s   # keep polling until a device attaches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := newLogger()
			if err != nil {
				return err
			}

			mgr := device.NewManager(logger, driverRoot())
			renderer := ui.NewRenderer()

			probe := func(ctx context.Context) (caps.CapabilitySet, error) {
				return mgr.DetectUDID(ctx, caps.CapabilitySet{UDID: caps.UDIDAuto})
			}

			c, err := probe(ctx)
			if err != nil && timeout > 0 {
				renderer.StartSpinner("Waiting for a device to attach...")
				wait.For(ctx, logger, timeout, func(ctx context.Context) bool {
					c, err = probe(ctx)
					return err == nil
				})
				renderer.StopSpinner()
			}
			if err != nil {
				return fmt.Errorf("no device detected: %w", err)
			}

			renderer.Success("Detected device %s", c.UDID)
			fmt.Println(c.UDID)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Keep polling for this long before giving up")

	return cmd
}
