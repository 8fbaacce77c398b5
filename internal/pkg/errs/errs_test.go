package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("dispatch run", "4b0c")

		assert.Equal(t, "dispatch run", err.ParamName)
		assert.Equal(t, "4b0c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 4b0c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("delivery request", "9f1e", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: delivery request, ID is: 9f1e (cause: connection reset)",
			err.Error())
	})

	t.Run("non string ids keep their type in the message", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("stop", 3)
		assert.Equal(t, "object not found: %!s(int=3)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("request id")

		assert.Equal(t, "request id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: request id", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("appears twice in batch")
		err := errs.NewValueIsInvalidErrorWithCause("request id", cause)

		assert.Equal(t, "value is invalid: request id (cause: appears twice in batch)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 91.5, err.Value)
		assert.Equal(t, -90.0, err.Min)
		assert.Equal(t, 90.0, err.Max)
		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parsed from query string")
		err := errs.NewValueIsOutOfRangeErrorWithCause("longitude", -181, -180, 180, cause)

		assert.Equal(t,
			"value is invalid: -181 is longitude, min value is -180, max value is 180 (cause: parsed from query string)",
			err.Error())
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "north\nsouth", 0, 10)
		assert.Contains(t, err.Error(), "north south")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("destination")

		assert.Equal(t, "value is required: destination", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("nil request")
		err := errs.NewValueIsRequiredErrorWithCause("request", cause)

		assert.Equal(t, "value is required: request (cause: nil request)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("run", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("id"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 100, -90, 90), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("origin"), errs.ErrValueIsRequired)

	wrapped := fmt.Errorf("submit delivery: %w", errs.NewValueIsOutOfRangeError("lat", 100, -90, 90))
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, wrapped, &rangeErr)
	assert.Equal(t, "lat", rangeErr.ParamName)
}
