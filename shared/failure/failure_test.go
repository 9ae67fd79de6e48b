package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bookme/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "SlotUnavailable", failure: failure.SlotUnavailable, code: http.StatusConflict},
		{name: "ScheduleClosed", failure: failure.ScheduleClosed, code: http.StatusConflict},
		{name: "InvalidDuration", failure: failure.InvalidDuration, code: http.StatusBadRequest},
		{name: "BookingNotFound", failure: failure.BookingNotFound, code: http.StatusNotFound},
		{name: "PartialBooking", failure: failure.PartialBooking, code: http.StatusBadGateway},
		{name: "PartialCancellation", failure: failure.PartialCancellation, code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestSentinels_ErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("commit failed: %w", failure.SlotUnavailable)

	if !errors.Is(wrapped, failure.SlotUnavailable) {
		t.Error("expected wrapped SlotUnavailable to match via errors.Is")
	}
	if errors.Is(wrapped, failure.ScheduleClosed) {
		t.Error("did not expect wrapped SlotUnavailable to match ScheduleClosed")
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("booking not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("cancel: %w", failure.PartialCancellation),
			expected: http.StatusBadGateway,
		},
		{
			name:     "plain error",
			input:    errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
