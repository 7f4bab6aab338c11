package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Jonahss/appium-ios-driver/internal/device"
	"github.com/Jonahss/appium-ios-driver/internal/ui"
	"github.com/Jonahss/appium-ios-driver/internal/xcode"
	"github.com/spf13/cobra"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Inspect the instruments device inventory",
	}

	cmd.AddCommand(devicesListCmd())
	cmd.AddCommand(devicesMatchCmd())

	return cmd
}

func devicesListCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attached and simulated devices",
		Example: `  iosresolve devices list
  iosresolve devices list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := newLogger()
			if err != nil {
				return err
			}

			inventory, err := xcode.New(logger).DeviceInventory(ctx)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(inventory)
			}

			ui.NewRenderer().RenderInventory(inventory, "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func devicesMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "match <device-string>",
		Short:   "Find the inventory entry for a device string",
		Example: `  iosresolve devices match "iPhone 6 (9.0 Simulator)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := newLogger()
			if err != nil {
				return err
			}

			inventory, err := xcode.New(logger).DeviceInventory(ctx)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			renderer := ui.NewRenderer()
			descriptor, udid, ok := device.Match(args[0], inventory)
			renderer.RenderInventory(inventory, descriptor)

			if !ok {
				renderer.Warning("No inventory entry matched %q", args[0])
				return nil
			}
			if udid == "" {
				renderer.Warning("Matched entry carries no udid: %s", descriptor)
				return nil
			}
			renderer.Success("Matched %s", descriptor)
			return nil
		},
	}
}
