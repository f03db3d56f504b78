package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelStatusValid(t *testing.T) {
	for _, s := range []LabelStatus{StatusProduced, StatusGrouped, StatusShipped, StatusReturned, StatusLost} {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, LabelStatus("recycled").Valid())
	assert.False(t, LabelStatus("").Valid())
}

func TestLabelStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    LabelStatus
		to      LabelStatus
		allowed bool
	}{
		{name: "produced to grouped", from: StatusProduced, to: StatusGrouped, allowed: true},
		{name: "grouped to shipped", from: StatusGrouped, to: StatusShipped, allowed: true},
		{name: "shipped to returned", from: StatusShipped, to: StatusReturned, allowed: true},
		{name: "returned re-enters as grouped", from: StatusReturned, to: StatusGrouped, allowed: true},
		{name: "any state can be lost", from: StatusShipped, to: StatusLost, allowed: true},
		{name: "produced cannot skip to shipped", from: StatusProduced, to: StatusShipped, allowed: false},
		{name: "shipped cannot revert to produced", from: StatusShipped, to: StatusProduced, allowed: false},
		{name: "lost is terminal", from: StatusLost, to: StatusGrouped, allowed: false},
		{name: "no self transition", from: StatusGrouped, to: StatusGrouped, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
