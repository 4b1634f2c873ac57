package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name           string
		current        model.RequestStatus
		hasAssignments bool
		want           model.RequestStatus
	}{
		{"new request without assignments", model.StatusPending, false, model.StatusPending},
		{"new request with assignments", model.StatusPending, true, model.StatusAssigned},
		{"assigned loses its assignments", model.StatusAssigned, false, model.StatusPending},
		{"assigned keeps assignments", model.StatusAssigned, true, model.StatusAssigned},
		{"completed is sticky while assigned", model.StatusCompleted, true, model.StatusCompleted},
		{"completed without assignments drops to pending", model.StatusCompleted, false, model.StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStatus(tc.current, tc.hasAssignments))
		})
	}
}

func TestNextStatus_NeverDerivesCancelled(t *testing.T) {
	assert.NotEqual(t, model.StatusCancelled, NextStatus(model.StatusPending, true))
	assert.NotEqual(t, model.StatusCancelled, NextStatus(model.StatusPending, false))
	assert.NotEqual(t, model.StatusCancelled, NextStatus(model.StatusCancelled, true))
}
