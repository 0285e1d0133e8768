package errs_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "a3b8c901")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "a3b8c901", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: a3b8c901", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "a3b8c901", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderID, ID is: a3b8c901 (cause: record not found)",
			err.Error())
	})

	t.Run("non-string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("tableNumber", 12)

		assert.Equal(t, "object not found: %!s(int=12)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("paymentMethod")

		assert.Equal(t, "paymentMethod", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unsupported payment code")
		err := errs.NewValueIsInvalidErrorWithCause("paymentMethod", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod (cause: unsupported payment code)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("field missing from request body")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: field missing from request body)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("orderVersion")

		assert.Equal(t, "orderVersion", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("stale row version")
		err := errs.NewVersionIsInvalidErrorWithCause("orderVersion", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion (cause: stale row version)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 99, 1, 50)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 99, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 50, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 99 is quantity, min value is 1, max value is 50", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("limit check failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 99, 1, 50, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 99 is quantity, min value is 1, max value is 50 (cause: limit check failed)",
			err.Error())
	})

	t.Run("line breaks are stripped from the message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "ring the\nback bell", 0, 10)

		assert.Contains(t, err.Error(), "ring the back bell")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelMessages(t *testing.T) {
	wantMessages := map[error]string{
		errs.ErrObjectNotFound:    "object not found",
		errs.ErrValueIsInvalid:    "value is invalid",
		errs.ErrValueIsOutOfRange: "value is out of range",
		errs.ErrValueIsRequired:   "value is required",
		errs.ErrVersionIsInvalid:  "version is invalid",
	}

	for sentinel, want := range wantMessages {
		assert.EqualError(t, sentinel, want)
	}
}

func TestUnwrapToSentinels(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"object not found", errs.NewObjectNotFoundError("orderID", "a3b8c901"), errs.ErrObjectNotFound},
		{"value is invalid", errs.NewValueIsInvalidError("paymentMethod"), errs.ErrValueIsInvalid},
		{"value is out of range", errs.NewValueIsOutOfRangeError("quantity", 99, 1, 50), errs.ErrValueIsOutOfRange},
		{"value is required", errs.NewValueIsRequiredError("customerName"), errs.ErrValueIsRequired},
		{"version is invalid", errs.NewVersionIsInvalidErrorWithCause("orderVersion", errors.New("stale")), errs.ErrVersionIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
