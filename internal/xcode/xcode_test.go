package xcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in        string
		wantMajor int
		wantFloat float64
	}{
		{"7.1.1", 7, 7.1},
		{"6.2", 6, 6.2},
		{"11", 11, 11},
		{" 8.4 ", 8, 8.4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMajor, v.Major)
			assert.InDelta(t, tt.wantFloat, v.Float, 0.0001)
		})
	}
}

func TestParseVersionMalformed(t *testing.T) {
	for _, in := range []string{"", "banana", "x.1"} {
		_, err := ParseVersion(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseXcodebuildVersion(t *testing.T) {
	output := "Xcode 7.1.1\nBuild version 7B1005\n"

	v, err := parseXcodebuildVersion(output)
	require.NoError(t, err)
	assert.Equal(t, 7, v.Major)
	assert.InDelta(t, 7.1, v.Float, 0.0001)
	assert.Equal(t, "7.1.1", v.Str)
}

func TestParseXcodebuildVersionNoVersionLine(t *testing.T) {
	_, err := parseXcodebuildVersion("xcode-select: error: tool 'xcodebuild' requires Xcode\n")
	assert.Error(t, err)
}

func TestParseInventory(t *testing.T) {
	output := "Known Devices:\n" +
		"this-host [ABCDEF01-2345]\n" +
		"\n" +
		"iPhone 6 (9.0 Simulator) [11111111-AAAA]\n" +
		"iPad 2 (9.0 Simulator) [22222222-BBBB]\n"

	devices := parseInventory(output)
	assert.Equal(t, []string{
		"this-host [ABCDEF01-2345]",
		"iPhone 6 (9.0 Simulator) [11111111-AAAA]",
		"iPad 2 (9.0 Simulator) [22222222-BBBB]",
	}, devices)
}
