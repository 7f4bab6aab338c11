package device

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
	"github.com/Jonahss/appium-ios-driver/internal/xcode"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func xc(major int) xcode.Version {
	return xcode.Version{Major: major, Float: float64(major), Str: "test"}
}

func boolPtr(b bool) *bool { return &b }

func TestResolveDeviceStringOverrideEscape(t *testing.T) {
	c := caps.CapabilitySet{
		DeviceName:      "=Custom String",
		PlatformVersion: "8.0",
		ForceIpad:       boolPtr(true),
	}

	assert.Equal(t, "Custom String", ResolveDeviceString(xc(7), "9.0", c, testLogger()))
	assert.Equal(t, "Custom String", ResolveDeviceString(xc(6), "9.0", c, testLogger()))
}

func TestResolveDeviceStringFixups(t *testing.T) {
	tests := []struct {
		name   string
		major  int
		c      caps.CapabilitySet
		maxSDK string
		want   string
	}{
		{
			name:   "xcode 7 ipad fixup",
			major:  7,
			c:      caps.CapabilitySet{DeviceName: "iPad Simulator", PlatformVersion: "8.0"},
			maxSDK: "9.0",
			want:   "iPad 2 (8.0)",
		},
		{
			name:   "xcode 6 ipad fixup",
			major:  6,
			c:      caps.CapabilitySet{DeviceName: "iPad Simulator", PlatformVersion: "8.0"},
			maxSDK: "9.0",
			want:   "iPad 2 (8.0 Simulator)",
		},
		{
			name:   "xcode 6 iphone fixup",
			major:  6,
			c:      caps.CapabilitySet{PlatformVersion: "9.0"},
			maxSDK: "9.0",
			want:   "iPhone 6 (9.0 Simulator)",
		},
		{
			name:   "xcode 7 iphone 7.1 fixup",
			major:  7,
			c:      caps.CapabilitySet{PlatformVersion: "7.1"},
			maxSDK: "9.0",
			want:   "iPhone 5s (7.1)",
		},
		{
			name:   "unlisted version passes through",
			major:  7,
			c:      caps.CapabilitySet{},
			maxSDK: "9.3",
			want:   "iPhone Simulator (9.3)",
		},
		{
			name:   "concrete device name passes through",
			major:  6,
			c:      caps.CapabilitySet{DeviceName: "iPad Air", PlatformVersion: "9.0"},
			maxSDK: "9.0",
			want:   "iPad Air (9.0 Simulator)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeviceString(xc(tt.major), tt.maxSDK, tt.c, testLogger())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDeviceStringFamily(t *testing.T) {
	tests := []struct {
		name string
		c    caps.CapabilitySet
		want string
	}{
		{"default is phone", caps.CapabilitySet{PlatformVersion: "9.3"}, "iPhone Simulator (9.3 Simulator)"},
		{"forceIpad", caps.CapabilitySet{ForceIpad: boolPtr(true), PlatformVersion: "9.3"}, "iPad Simulator (9.3 Simulator)"},
		{"forceIpad false", caps.CapabilitySet{ForceIpad: boolPtr(false), PlatformVersion: "9.3"}, "iPhone Simulator (9.3 Simulator)"},
		{"forceIphone beats forceIpad", caps.CapabilitySet{ForceIphone: boolPtr(true), ForceIpad: boolPtr(true), PlatformVersion: "9.3"}, "iPhone Simulator (9.3 Simulator)"},
		{"name refines to ipad", caps.CapabilitySet{DeviceName: "my ipad", PlatformVersion: "9.3"}, "my ipad (9.3 Simulator)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeviceString(xc(6), "9.3", tt.c, testLogger())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDeviceStringDefaultsToMaxSDK(t *testing.T) {
	got := ResolveDeviceString(xc(6), "9.2", caps.CapabilitySet{DeviceName: "iPhone 6s"}, testLogger())
	assert.Equal(t, "iPhone 6s (9.2 Simulator)", got)
}
