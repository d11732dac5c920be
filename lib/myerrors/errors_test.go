package myerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		httpStatus int
		errorText  string
		publicText string
	}{
		{
			name:       "No http error",
			in:         myErr,
			httpStatus: 500,
			errorText:  "my error",
			publicText: "Internal Server Error",
		},
		{
			name:       "Invalid input error",
			in:         NewInvalidInputError(myErr),
			httpStatus: 400,
			errorText:  "status: 400, err: my error",
			publicText: "my error",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			httpStatus: 404,
			errorText:  "status: 404, err: my error",
			publicText: "my error",
		},
		{
			name:       "Wrapped internal error with public message",
			in:         fmt.Errorf("outer: %w", NewInternalError(myErr).WithPublicMessage("Something went wrong")),
			httpStatus: 500,
			errorText:  "outer: status: 500, err: my error",
			publicText: "Something went wrong",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
			publicText: "my error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpStatus := GetHTTPStatus(tc.in)
			if httpStatus != tc.httpStatus {
				t.Errorf("HttpStatus: got %v, want %v", httpStatus, tc.httpStatus)
			}
			if tc.errorText != tc.in.Error() {
				t.Errorf("%s: ErrorText: got %v, want %v", tc.name, tc.in.Error(), tc.errorText)
			}
			publicText := GetPublicMessage(tc.in)
			if publicText != tc.publicText {
				t.Errorf("%s: PublicText: got %v, want %v", tc.name, publicText, tc.publicText)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	myErr := fmt.Errorf("my error")

	err := NewNotFoundError(myErr)

	if !errors.Is(err, myErr) {
		t.Errorf("expected %v to wrap %v", err, myErr)
	}
}
