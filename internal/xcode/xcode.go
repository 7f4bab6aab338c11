package xcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Jonahss/appium-ios-driver/internal/process"
)

// ErrDiscovery indicates the installed toolchain version or SDK could not be
// determined. It aborts resolution; no recovery is attempted.
var ErrDiscovery = errors.New("xcode discovery failed")

// Version is the installed Xcode version, fetched once per session.
type Version struct {
	Major int
	Float float64
	Str   string
}

// Xcode shells out to the developer toolchain for version facts and the live
// device inventory.
type Xcode struct {
	runner *process.Runner
	logger *slog.Logger
}

func New(logger *slog.Logger) *Xcode {
	return &Xcode{
		runner: process.NewRunner(),
		logger: logger,
	}
}

// Version reports the installed Xcode version via `xcodebuild -version`.
func (x *Xcode) Version(ctx context.Context) (Version, error) {
	output, err := x.runner.RunSilent(ctx, "xcodebuild", []string{"-version"})
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	v, err := parseXcodebuildVersion(string(output))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	x.logger.Debug("detected xcode version", "version", v.Str)
	return v, nil
}

// MaxIOSSDK reports the newest iOS simulator SDK the toolchain can target.
func (x *Xcode) MaxIOSSDK(ctx context.Context) (string, error) {
	output, err := x.runner.RunSilent(ctx, "xcrun", []string{"--sdk", "iphonesimulator", "--show-sdk-version"})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	sdk := strings.TrimSpace(string(output))
	if sdk == "" {
		return "", fmt.Errorf("%w: empty sdk version from xcrun", ErrDiscovery)
	}

	x.logger.Debug("detected max ios sdk", "sdk", sdk)
	return sdk, nil
}

// DeviceInventory lists the attached and simulated devices known to
// instruments, one descriptor per line of the form "<name> [<udid>]".
func (x *Xcode) DeviceInventory(ctx context.Context) ([]string, error) {
	output, err := x.runner.RunSilent(ctx, "instruments", []string{"-s", "devices"})
	if err != nil {
		return nil, fmt.Errorf("instruments -s devices: %w", err)
	}
	return parseInventory(string(output)), nil
}

// parseXcodebuildVersion extracts the version from `xcodebuild -version`
// output, whose first line reads "Xcode X.Y[.Z]".
func parseXcodebuildVersion(output string) (Version, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Xcode ") {
			continue
		}
		return ParseVersion(strings.TrimPrefix(line, "Xcode "))
	}
	return Version{}, fmt.Errorf("no Xcode version line in output: %q", strings.TrimSpace(output))
}

// ParseVersion parses a dotted version string such as "7.1.1" into its major
// component and a major.minor float used for ordering.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	if len(parts) == 0 || parts[0] == "" {
		return Version{}, fmt.Errorf("malformed version string: %q", s)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("malformed version string %q: %v", s, err)
	}

	f := float64(major)
	if len(parts) > 1 {
		parsed, err := strconv.ParseFloat(parts[0]+"."+parts[1], 64)
		if err != nil {
			return Version{}, fmt.Errorf("malformed version string %q: %v", s, err)
		}
		f = parsed
	}

	return Version{Major: major, Float: f, Str: s}, nil
}

func parseInventory(output string) []string {
	var devices []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "Known Devices:" {
			continue
		}
		devices = append(devices, line)
	}
	return devices
}
