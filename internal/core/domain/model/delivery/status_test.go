package delivery_test

import (
	"testing"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []delivery.Status{delivery.Pending, delivery.Dispatched, delivery.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []delivery.Status{delivery.Unknown, delivery.Status(42), delivery.Status(-1)} {
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is not a valid status")
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", delivery.Pending.String())
	assert.Equal(t, "Dispatched", delivery.Dispatched.String())
	assert.Equal(t, "Cancelled", delivery.Cancelled.String())
	assert.Equal(t, "Unknown", delivery.Unknown.String())
	assert.Equal(t, "Unknown", delivery.Status(99).String())
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		from       delivery.Status
		dispatchOK bool
		cancelOK   bool
	}{
		{delivery.Unknown, false, false},
		{delivery.Pending, true, true},
		{delivery.Dispatched, false, false},
		{delivery.Cancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			next, err := tt.from.Dispatch()
			if tt.dispatchOK {
				require.NoError(t, err)
				assert.Equal(t, delivery.Dispatched, next)
			} else {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "not a valid status to dispatch")
			}

			next, err = tt.from.Cancel()
			if tt.cancelOK {
				require.NoError(t, err)
				assert.Equal(t, delivery.Cancelled, next)
			} else {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "not a valid status to cancel")
			}
		})
	}
}

func TestStatus_ValidateRun(t *testing.T) {
	require.NoError(t, delivery.Pending.ValidateRun(false))
	require.NoError(t, delivery.Cancelled.ValidateRun(false))
	require.NoError(t, delivery.Dispatched.ValidateRun(true))

	require.Error(t, delivery.Pending.ValidateRun(true))
	require.Error(t, delivery.Cancelled.ValidateRun(true))
	require.Error(t, delivery.Dispatched.ValidateRun(false))
}
