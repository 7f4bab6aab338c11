package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
	"github.com/Jonahss/appium-ios-driver/internal/device"
	"github.com/Jonahss/appium-ios-driver/internal/manifest"
	"github.com/Jonahss/appium-ios-driver/internal/ui"
	"github.com/Jonahss/appium-ios-driver/internal/wait"
	"github.com/Jonahss/appium-ios-driver/internal/xcode"
	"github.com/spf13/cobra"
)

// resolvedTarget is the machine-readable result of a resolution run.
type resolvedTarget struct {
	DeviceString       string `json:"deviceString"`
	MatchedDescriptor  string `json:"matchedDescriptor,omitempty"`
	MatchedUDID        string `json:"matchedUdid,omitempty"`
	UDID               string `json:"udid,omitempty"`
	App                string `json:"app,omitempty"`
	BundleID           string `json:"bundleId,omitempty"`
	InitialOrientation string `json:"initialOrientation"`
	Reset              bool   `json:"reset"`
	WithoutDelay       bool   `json:"withoutDelay"`
	UseRobot           bool   `json:"useRobot"`
	RobotURL           string `json:"robotUrl,omitempty"`
	PrelaunchSimulator bool   `json:"prelaunchSimulator"`
}

func resolveCmd() *cobra.Command {
	var (
		capsPath      string
		jsonOut       bool
		waitApp       time.Duration
		patchManifest bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a capability set to a concrete device target",
		Example: `  iosresolve resolve --caps caps.json
  iosresolve resolve --caps caps.json --json
  iosresolve resolve --caps caps.json --wait-app 30s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := newLogger()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(capsPath)
			if err != nil {
				return fmt.Errorf("reading capabilities: %w", err)
			}

			c, err := caps.ParseJSON(raw)
			if err != nil {
				return err
			}
			if c, err = caps.Normalize(c, logger); err != nil {
				return err
			}
			if c, err = caps.NormalizeApp(c, logger); err != nil {
				return err
			}

			// A build system may still be copying the .app bundle when
			// resolution starts; optionally wait for it to land.
			if waitApp > 0 && c.App != "" && !caps.IsBundleIdentifier(c.App) {
				if !wait.ForPath(ctx, logger, waitApp, c.App) {
					return fmt.Errorf("app bundle never appeared at %s", c.App)
				}
			}

			// A session naming an .app bundle but no bundleId can usually get
			// it from the bundle's own manifest. Opportunistic: failure is a
			// warning, not an error.
			if c.BundleID == "" && c.App != "" && !caps.IsBundleIdentifier(c.App) {
				if id, merr := manifest.BundleID(filepath.Join(c.App, "Info.plist")); merr != nil {
					logger.Warn("could not read bundle id from app manifest", "error", merr)
				} else {
					c.BundleID = id
				}
			}

			mgr := device.NewManager(logger, driverRoot())
			if c, err = mgr.DetectUDID(ctx, c); err != nil {
				return err
			}

			renderer := ui.NewRenderer()
			if !jsonOut {
				renderer.StartSpinner("Querying Xcode...")
			}

			x := xcode.New(logger)
			tv, err := x.Version(ctx)
			if err != nil {
				renderer.StopSpinner()
				return err
			}
			maxSDK, err := x.MaxIOSSDK(ctx)
			if err != nil {
				renderer.StopSpinner()
				return err
			}

			c.DeviceString = device.ResolveDeviceString(tv, maxSDK, c, logger)

			inventory, err := x.DeviceInventory(ctx)
			renderer.StopSpinner()
			if err != nil {
				return fmt.Errorf("listing device inventory: %w", err)
			}

			descriptor, udid, ok := device.Match(c.DeviceString, inventory)
			if ok {
				c.MatchedUDID = udid
			}

			if patchManifest && c.App != "" && !caps.IsBundleIdentifier(c.App) {
				if err := manifest.SetDeviceFamily(filepath.Join(c.App, "Info.plist"), c.DeviceString); err != nil {
					return err
				}
				logger.Info("patched device family into app manifest", "device", c.DeviceString)
			}

			target := resolvedTarget{
				DeviceString:       c.DeviceString,
				MatchedDescriptor:  descriptor,
				MatchedUDID:        c.MatchedUDID,
				UDID:               c.UDID,
				App:                c.App,
				BundleID:           c.BundleID,
				InitialOrientation: c.InitialOrientation,
				Reset:              c.Reset,
				WithoutDelay:       c.WithoutDelay,
				UseRobot:           c.UseRobot,
				RobotURL:           c.RobotURL,
				PrelaunchSimulator: device.ShouldPrelaunchSimulator(c, maxSDK),
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(target)
			}

			renderer.RenderIdentity(ui.Identity{
				DeviceString: target.DeviceString,
				Descriptor:   target.MatchedDescriptor,
				UDID:         firstNonEmpty(target.MatchedUDID, target.UDID),
				BundleID:     target.BundleID,
				App:          target.App,
				Orientation:  target.InitialOrientation,
			})
			if !ok {
				renderer.Warning("No inventory entry matched %q", target.DeviceString)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&capsPath, "caps", "", "Path to the desired-capabilities JSON document")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().DurationVar(&waitApp, "wait-app", 0, "Wait up to this long for the app bundle path to appear")
	cmd.Flags().BoolVar(&patchManifest, "patch-manifest", false, "Write the resolved device family into the app's Info.plist")
	_ = cmd.MarkFlagRequired("caps")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
