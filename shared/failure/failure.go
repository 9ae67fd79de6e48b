package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Booking error kinds. These are sentinels so callers can errors.Is against
// them; partial-failure states are reported distinctly from clean failures
// because the caller must reconcile rather than simply retry.
var (
	// SlotUnavailable means the requested slot was taken between render and
	// commit, or the client submitted stale availability.
	SlotUnavailable = &Failure{Code: http.StatusConflict, Message: "slot is no longer available"}
	// ScheduleClosed means the requested day has no opening hours.
	ScheduleClosed = &Failure{Code: http.StatusConflict, Message: "business is closed on the requested day"}
	// InvalidDuration means the requested duration is not bookable.
	InvalidDuration = &Failure{Code: http.StatusBadRequest, Message: "invalid booking duration"}
	// BookingNotFound means the cancellation target does not exist.
	BookingNotFound = &Failure{Code: http.StatusNotFound, Message: "booking not found"}
	// PartialBooking means the business-side record was written but the
	// customer-side mirror failed and compensation also failed.
	PartialBooking = &Failure{Code: http.StatusBadGateway, Message: "booking partially committed, reconciliation required"}
	// PartialCancellation means only one of the two mirrored records could be
	// deleted.
	PartialCancellation = &Failure{Code: http.StatusBadGateway, Message: "booking partially cancelled, reconciliation required"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
