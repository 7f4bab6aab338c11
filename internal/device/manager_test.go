package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonahss/appium-ios-driver/internal/caps"
)

func TestDetectUDIDNoopUnlessAuto(t *testing.T) {
	mgr := NewManager(testLogger(), t.TempDir())

	for _, udid := range []string{"", "1234567890abcdef"} {
		in := caps.CapabilitySet{UDID: udid, DeviceName: "iPhone 6"}
		out, err := mgr.DetectUDID(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestShouldPrelaunchSimulator(t *testing.T) {
	tests := []struct {
		name   string
		c      caps.CapabilitySet
		maxSDK string
		want   bool
	}{
		{"default device", caps.CapabilitySet{DefaultDevice: true}, "6.1", false},
		{"modern sdk", caps.CapabilitySet{}, "7.1", false},
		{"newer sdk", caps.CapabilitySet{}, "9.3", false},
		{"old sdk", caps.CapabilitySet{}, "7.0", true},
		{"ancient sdk", caps.CapabilitySet{}, "6.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldPrelaunchSimulator(tt.c, tt.maxSDK))
		})
	}
}
