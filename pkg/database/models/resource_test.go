package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceStatusValid(t *testing.T) {
	assert.True(t, StatusProvisioning.Valid())
	assert.True(t, StatusRunning.Valid())
	assert.True(t, StatusUpgrading.Valid())
	assert.True(t, StatusDeleted.Valid())
	assert.False(t, ResourceStatus("Paused").Valid())
	assert.False(t, ResourceStatus("").Valid())
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to ResourceStatus
		allowed  bool
	}{
		{StatusProvisioning, StatusRunning, true},
		{StatusRunning, StatusUpgrading, true},
		{StatusUpgrading, StatusRunning, true},
		{StatusRunning, StatusDeleted, true},

		{StatusProvisioning, StatusUpgrading, false},
		{StatusProvisioning, StatusDeleted, false},
		{StatusUpgrading, StatusDeleted, false},
		{StatusUpgrading, StatusUpgrading, false},
		{StatusDeleted, StatusRunning, false},
		{StatusDeleted, StatusDeleted, false},
		{StatusRunning, StatusProvisioning, false},
		{StatusRunning, StatusRunning, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, ValidTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRuleDirectionValid(t *testing.T) {
	assert.True(t, RuleInbound.Valid())
	assert.True(t, RuleOutbound.Valid())
	assert.False(t, RuleDirection("sideways").Valid())
}
