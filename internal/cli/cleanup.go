package cli

import (
	"github.com/Jonahss/appium-ios-driver/internal/device"
	"github.com/Jonahss/appium-ios-driver/internal/ui"
	"github.com/spf13/cobra"
)

func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Stop and remove leftover simulator daemons",
		Long: `Stop and remove running launchd jobs belonging to the iOS simulator.
Best-effort: finding nothing to clean up is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := newLogger()
			if err != nil {
				return err
			}

			renderer := ui.NewRenderer()
			renderer.StartSpinner("Cleaning up simulator daemons...")

			device.NewManager(logger, driverRoot()).CleanupSimulatorDaemons(ctx)

			renderer.StopSpinner()
			renderer.Success("Simulator daemons cleaned up")
			return nil
		},
	}
}
