package errs_test

import (
	"errors"
	"testing"

	"citrustrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("product")

		assert.Equal(t, "product", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: product", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("product", cause)

		assert.Equal(t, "product", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: product (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 95, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 95, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 95 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("exporter_name")

		assert.Equal(t, "exporter_name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: exporter_name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("exporter_name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: exporter_name (cause: missing required field)", err.Error())
	})
}

func TestAccessForbiddenError(t *testing.T) {
	t.Run("NewAccessForbiddenError", func(t *testing.T) {
		err := errs.NewAccessForbiddenError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "access forbidden: 123", err.Error())
		assert.Equal(t, errs.ErrAccessForbidden, err.Unwrap())
	})

	t.Run("NewAccessForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("requester is not the owner")
		err := errs.NewAccessForbiddenErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"access forbidden: param is: shipmentId, ID is: 123 (cause: requester is not the owner)",
			err.Error())
	})
}

func TestCodeCollisionError(t *testing.T) {
	t.Run("NewCodeCollisionError", func(t *testing.T) {
		err := errs.NewCodeCollisionError("tracking_number", "CIT-AB12CD34")

		assert.Equal(t, "tracking_number", err.ParamName)
		assert.Equal(t, "CIT-AB12CD34", err.Code)
		require.NoError(t, err.Cause)
		assert.Equal(t, "code collision: CIT-AB12CD34", err.Error())
		assert.Equal(t, errs.ErrCodeCollision, err.Unwrap())
	})

	t.Run("NewCodeCollisionErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewCodeCollisionErrorWithCause("invoice_number", "INV-AB12CD34", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"code collision: param is: invoice_number, code is: INV-AB12CD34 (cause: duplicated key not allowed)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "access forbidden", errs.ErrAccessForbidden.Error())
		assert.Equal(t, "code collision", errs.ErrCodeCollision.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("shipmentId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("product"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("latitude", 95, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("importer_name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewAccessForbiddenError("shipmentId", "123"), errs.ErrAccessForbidden)
		require.ErrorIs(t, errs.NewCodeCollisionError("tracking_number", "CIT-AB12CD34"), errs.ErrCodeCollision)
	})
}
