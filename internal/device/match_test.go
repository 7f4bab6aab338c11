package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLastEntryWins(t *testing.T) {
	inventory := []string{
		"iPhone 6 (9.0 Simulator) [11111111-AAAA]",
		"iPad 2 (9.0 Simulator) [22222222-BBBB]",
		"iPhone 6 (9.0 Simulator) [33333333-CCCC]",
	}

	descriptor, udid, ok := Match("iPhone 6 (9.0 Simulator)", inventory)
	assert.True(t, ok)
	assert.Equal(t, "iPhone 6 (9.0 Simulator) [33333333-CCCC]", descriptor)
	assert.Equal(t, "33333333-CCCC", udid)
}

func TestMatchNoMatch(t *testing.T) {
	inventory := []string{
		"iPad 2 (9.0 Simulator) [22222222-BBBB]",
	}

	descriptor, udid, ok := Match("iPhone 6 (9.0 Simulator)", inventory)
	assert.False(t, ok)
	assert.Empty(t, descriptor)
	assert.Empty(t, udid)
}

func TestMatchDescriptorWithoutUdid(t *testing.T) {
	inventory := []string{
		"iPhone 6 (9.0 Simulator) [11111111-AAAA]",
		"iPhone 6 (9.0 Simulator)",
	}

	// The later matching entry wins even though its udid cannot be extracted.
	descriptor, udid, ok := Match("iPhone 6 (9.0 Simulator)", inventory)
	assert.True(t, ok)
	assert.Equal(t, "iPhone 6 (9.0 Simulator)", descriptor)
	assert.Empty(t, udid)
}

func TestMatchEmptyBracketsYieldNoUdid(t *testing.T) {
	descriptor, udid, ok := Match("iPhone 6", []string{"iPhone 6 (9.0 Simulator) []"})
	assert.True(t, ok)
	assert.Equal(t, "iPhone 6 (9.0 Simulator) []", descriptor)
	assert.Empty(t, udid)
}

func TestMatchEmptyInventory(t *testing.T) {
	_, _, ok := Match("iPhone 6", nil)
	assert.False(t, ok)
}

func TestMatchEmptyTarget(t *testing.T) {
	_, _, ok := Match("", []string{"iPhone 6 (9.0 Simulator) [11111111-AAAA]"})
	assert.False(t, ok)
}
