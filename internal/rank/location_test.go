package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modeByID(t *testing.T, id string) LocationMode {
	t.Helper()
	set := NewLocationModeSet(nil)
	mode, ok := set[id]
	require.True(t, ok, "mode %s must exist", id)
	return mode
}

func TestDefaultLocationModes(t *testing.T) {
	set := NewLocationModeSet(nil)
	assert.Equal(t, []string{"global", "nl_eu", "nl_only"}, set.IDs())
	assert.True(t, set.Valid("nl_only"))
	assert.False(t, set.Valid("mars"))
}

func TestPassesLocationGateNLOnly(t *testing.T) {
	mode := modeByID(t, "nl_only")

	tests := []struct {
		name     string
		location string
		hint     string
		raw      string
		want     bool
	}{
		{"dutch city", "Amsterdam", "", "", true},
		{"country name", "Netherlands", "", "", true},
		{"us location rejected", "United States", "", "", false},
		{"eu location rejected in nl_only", "Berlin, Germany", "", "", false},
		{"unknown location passes", "", "", "great operations role", true},
		{"unrecognized city passes", "Springfield", "", "", true},
		{"remote international rescues", "United States", "", "fully remote role with international scope", true},
		{"remote without scope stays rejected", "United States", "", "fully remote role", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PassesLocationGate(mode, tt.location, tt.hint, tt.raw))
		})
	}
}

func TestPassesLocationGateNLEU(t *testing.T) {
	mode := modeByID(t, "nl_eu")
	assert.True(t, PassesLocationGate(mode, "Berlin, Germany", "", ""))
	assert.True(t, PassesLocationGate(mode, "Amsterdam", "", ""))
	assert.False(t, PassesLocationGate(mode, "New York, United States", "", ""))
}

func TestPassesLocationGateGlobal(t *testing.T) {
	mode := modeByID(t, "global")
	assert.True(t, PassesLocationGate(mode, "United States", "", ""))
	assert.True(t, PassesLocationGate(mode, "Singapore", "", ""))
	assert.True(t, PassesLocationGate(mode, "", "", ""))
}

func TestLocationGateUsesHintWhenLocationUnknown(t *testing.T) {
	mode := modeByID(t, "nl_only")
	// Location "Unknown" is ignored; the hint carries the signal.
	assert.False(t, PassesLocationGate(mode, "Unknown", "based in the UK", ""))
	assert.True(t, PassesLocationGate(mode, "Unknown", "hybrid from Utrecht", ""))
}

func TestLocationProximity(t *testing.T) {
	assert.Equal(t, 1.0, locationProximity("Rotterdam", "", ""))
	assert.Equal(t, 0.5, locationProximity("Paris, France", "", ""))
	assert.Equal(t, 0.0, locationProximity("Tokyo", "", ""))
}
