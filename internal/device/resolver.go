package device

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
	"github.com/Jonahss/appium-ios-driver/internal/xcode"
)

// ResolveDeviceString derives the canonical simulator device string for a
// session. It is a pure function of its inputs and always returns a
// best-effort string; a name that matches nothing in the inventory is the
// caller's problem, not an error here.
//
// A deviceName starting with "=" is an escape hatch: the remainder is
// returned verbatim with no family inference, version suffix, or fixup.
func ResolveDeviceString(tv xcode.Version, maxSDK string, c caps.CapabilitySet, logger *slog.Logger) string {
	logger.Debug("resolving device string",
		"deviceName", c.DeviceName,
		"platformVersion", c.PlatformVersion,
		"xcodeVersion", tv.Str,
		"maxSDK", maxSDK)

	if strings.HasPrefix(c.DeviceName, "=") {
		s := c.DeviceName[1:]
		logger.Debug("using explicit device string", "device", s)
		return s
	}

	isPhone := true
	if c.ForceIphone != nil && *c.ForceIphone {
		isPhone = true
	} else if c.ForceIpad != nil && *c.ForceIpad {
		isPhone = false
	}

	lowered := strings.ToLower(c.DeviceName)
	if strings.Contains(lowered, "iphone") {
		isPhone = true
	} else if strings.Contains(lowered, "ipad") {
		isPhone = false
	}

	device := c.DeviceName
	if device == "" {
		if isPhone {
			device = "iPhone Simulator"
		} else {
			device = "iPad Simulator"
		}
	}

	version := c.PlatformVersion
	if version == "" {
		version = maxSDK
	}

	if tv.Major == 7 {
		device = fmt.Sprintf("%s (%s)", device, version)
	} else {
		device = fmt.Sprintf("%s (%s Simulator)", device, version)
	}

	if fixed, ok := fixupTable(tv.Major)[device]; ok {
		logger.Debug("applying device string fixup", "from", device, "to", fixed)
		device = fixed
	}

	logger.Debug("resolved device string", "device", device)
	return device
}
