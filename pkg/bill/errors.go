package bill

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNotAuthenticated is returned when a call that requires a session
	// is made before a successful Login.
	ErrNotAuthenticated = errors.New("not authenticated: call Login first")

	// ErrPageLimitExceeded is returned when the listing endpoint keeps
	// producing continuation cursors past the configured page limit.
	ErrPageLimitExceeded = errors.New("pagination page limit exceeded")
)

// AuthError reports a failed login: a transport failure, a non-success
// status, or a success response that did not carry a session token.
type AuthError struct {
	StatusCode int
	Body       string // response body, kept for operator diagnosis
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed: %v", e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("login failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("login succeeded but sessionId missing, response: %s", e.Body)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// ListError reports a failure at some page during invoice listing. The
// whole listing is discarded when any page fails.
type ListError struct {
	Page       int // 1-based page number that failed
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *ListError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("list invoices page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("list invoices page %d failed with status %d: %s", e.Page, e.StatusCode, e.Body)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ListError) Unwrap() error {
	return e.Err
}

// FetchError reports a failure retrieving a single invoice's PDF.
type FetchError struct {
	InvoiceID  string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch PDF for invoice %s: %v", e.InvoiceID, e.Err)
	}
	return fmt.Sprintf("fetch PDF for invoice %s failed with status %d", e.InvoiceID, e.StatusCode)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FetchError) Unwrap() error {
	return e.Err
}
