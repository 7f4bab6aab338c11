package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
	"github.com/Jonahss/appium-ios-driver/internal/process"
)

// ErrUdidDetection indicates the udid auto-detect probe failed or produced an
// unusable identifier. Fatal for sessions requesting udid "auto".
var ErrUdidDetection = errors.New("udid detection failed")

const (
	// ideviceIDTool is the libimobiledevice probe listing attached devices.
	ideviceIDTool = "idevice_id"

	// bundledIdeviceIDPath is the fallback copy shipped alongside the driver,
	// relative to the driver root.
	bundledIdeviceIDPath = "build/libimobiledevice-macosx/idevice_id"

	// udidProbeTimeout bounds the probe so a wedged USB stack cannot hang
	// session start.
	udidProbeTimeout = 3000 * time.Millisecond

	// simulatorDaemonName is the launchd service-name substring identifying
	// simulator daemons.
	simulatorDaemonName = "com.apple.iphonesimulator"
)

// Manager runs the pre-flight device probes: udid auto-detection and
// simulator daemon cleanup.
type Manager struct {
	runner  *process.Runner
	logger  *slog.Logger
	rootDir string
}

func NewManager(logger *slog.Logger, rootDir string) *Manager {
	return &Manager{
		runner:  process.NewRunner(),
		logger:  logger,
		rootDir: rootDir,
	}
}

// DetectUDID resolves a udid capability of "auto" by probing for an attached
// device. Any other udid value is left untouched.
func (m *Manager) DetectUDID(ctx context.Context, c caps.CapabilitySet) (caps.CapabilitySet, error) {
	if c.UDID != caps.UDIDAuto {
		return c, nil
	}

	tool := ideviceIDTool
	if _, err := exec.LookPath(tool); err != nil {
		tool = filepath.Join(m.rootDir, bundledIdeviceIDPath)
		m.logger.Debug("idevice_id not on PATH, using bundled tool", "path", tool)
	}

	res, err := m.runner.RunWithTimeout(ctx, udidProbeTimeout, tool, []string{"-l"})
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrUdidDetection, err)
	}

	udid, _, _ := strings.Cut(strings.TrimSpace(res.Stdout), "\n")
	udid = strings.TrimSpace(udid)
	if len(udid) <= 2 {
		return c, fmt.Errorf("%w: probe returned %q", ErrUdidDetection, udid)
	}

	m.logger.Info("auto-detected device udid", "udid", udid)
	c.UDID = udid
	return c, nil
}

// CleanupSimulatorDaemons stops and removes every running simulator launchd
// job. Best-effort hygiene: failures are logged and swallowed, and running it
// when nothing matches is harmless.
func (m *Manager) CleanupSimulatorDaemons(ctx context.Context) {
	stop := fmt.Sprintf(`launchctl list | grep %s | awk '{print $3}' | xargs -n 1 launchctl stop`, simulatorDaemonName)
	remove := fmt.Sprintf(`launchctl list | grep %s | awk '{print $3}' | xargs -n 1 launchctl remove`, simulatorDaemonName)

	for _, script := range []string{stop, remove} {
		if _, err := m.runner.RunWithTimeout(ctx, 10*time.Second, "bash", []string{"-c", script}); err != nil {
			m.logger.Debug("simulator daemon cleanup command failed", "error", err)
		}
	}
}

// ShouldPrelaunchSimulator reports whether the simulator has to be launched
// before instrumentation starts. Newer SDKs (7.1+) and default-device
// sessions let the automation layer launch the device itself; older
// toolchains need the pre-launch workaround.
func ShouldPrelaunchSimulator(c caps.CapabilitySet, maxSDK string) bool {
	if c.DefaultDevice {
		return false
	}
	return caps.VersionFloat(maxSDK) < 7.1
}
