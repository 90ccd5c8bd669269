// Package bill implements a minimal client for the Bill.com v3 Connect
// API: session login, createdTime-filtered invoice listing with cursor
// pagination, and invoice PDF retrieval.
package bill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	connectAPIBase = "https://gateway.prod.bill.com/connect"
	pdfAPIBase     = "https://api.bill.com"

	// requestTimeout is the fixed upper time bound for every API call.
	requestTimeout = 60 * time.Second

	// DefaultMaxPages bounds the pagination loop. The cursor is opaque and
	// server-issued, so a misbehaving endpoint could otherwise chain pages
	// forever; past this many pages the listing fails with
	// ErrPageLimitExceeded.
	DefaultMaxPages = 1000
)

// Client is a Bill.com API client. A Client is created unauthenticated;
// Login exchanges credentials for the session token used by every
// subsequent call. The session is never refreshed locally and expires
// server-side.
//
// BaseURL and PDFBaseURL default to the production endpoints and exist as
// fields so tests can point the client at a stub server.
type Client struct {
	BaseURL    string // Connect API base (login, invoice listing)
	PDFBaseURL string // PDF servlet base

	// MaxPages caps the number of listing requests per call.
	// Zero means DefaultMaxPages.
	MaxPages int

	devKey     string
	sessionID  string
	httpClient *http.Client
}

// NewClient creates a Bill.com client with the given developer key. Every
// request carries a fixed 60-second timeout; there is no retry.
func NewClient(devKey string) *Client {
	return &Client{
		BaseURL:    connectAPIBase,
		PDFBaseURL: pdfAPIBase,
		devKey:     devKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SessionID returns the session token obtained by Login, or "" before a
// successful login.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Login exchanges the credentials for a session token in a single attempt.
// Any transport failure or non-success status yields an *AuthError, as
// does a success response with no sessionId field; the latter carries the
// full response body so operators can tell "server unreachable" from
// "server responded unexpectedly".
func (c *Client) Login(username, password, orgID string) error {
	reqBody, err := json.Marshal(loginRequest{
		Username:       username,
		Password:       password,
		OrganizationID: orgID,
		DevKey:         c.devKey,
	})
	if err != nil {
		return &AuthError{Err: fmt.Errorf("encode login request: %w", err)}
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/v3/login", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AuthError{Err: fmt.Errorf("read login response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return &AuthError{Err: fmt.Errorf("parse login response: %w", err)}
	}
	if login.SessionID == "" {
		return &AuthError{Body: string(body)}
	}

	c.sessionID = login.SessionID
	return nil
}

// ListInvoicesCreatedBetween returns every invoice whose createdTime is
// >= startDate (inclusive) and < endDate (exclusive), both formatted
// YYYY-MM-DD. Pages are followed via the server's nextPage cursor until a
// response carries none; records are accumulated in arrival order with no
// deduplication. The operation is all-or-nothing: a failure at any page
// discards everything fetched so far and returns a *ListError.
func (c *Client) ListInvoicesCreatedBetween(startDate, endDate string) ([]Invoice, error) {
	if c.sessionID == "" {
		return nil, ErrNotAuthenticated
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	filters := createdTimeFilter(startDate, endDate)

	var invoices []Invoice
	nextPage := ""

	for page := 1; ; page++ {
		if page > maxPages {
			return nil, &ListError{Page: page, Err: fmt.Errorf("%w (limit %d)", ErrPageLimitExceeded, maxPages)}
		}

		// The cursor alone determines the next page's content; the filter
		// is only sent on the first request.
		params := url.Values{}
		if nextPage != "" {
			params.Set("page", nextPage)
		} else {
			params.Set("filters", filters)
		}

		req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/v3/invoices?"+params.Encode(), nil)
		if err != nil {
			return nil, &ListError{Page: page, Err: fmt.Errorf("create request: %w", err)}
		}
		req.Header.Set("content-type", "application/json")
		req.Header.Set("sessionId", c.sessionID)
		req.Header.Set("devKey", c.devKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &ListError{Page: page, Err: err}
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, &ListError{Page: page, Err: fmt.Errorf("read response body: %w", err)}
		}

		if resp.StatusCode != http.StatusOK {
			return nil, &ListError{Page: page, StatusCode: resp.StatusCode, Body: string(body)}
		}

		var listResp listResponse
		if err := json.Unmarshal(body, &listResp); err != nil {
			return nil, &ListError{Page: page, Err: fmt.Errorf("parse response: %w", err)}
		}

		invoices = append(invoices, listResp.Results...)

		nextPage = listResp.NextPage
		if nextPage == "" {
			break
		}
	}

	return invoices, nil
}

// GetInvoicePDF retrieves the rendered PDF for a single invoice in one
// request, authenticated with the session token only. Any transport
// failure or non-success status yields a *FetchError carrying the invoice
// id.
func (c *Client) GetInvoicePDF(invoiceID string) ([]byte, error) {
	if c.sessionID == "" {
		return nil, ErrNotAuthenticated
	}

	params := url.Values{}
	params.Set("Id", invoiceID)
	params.Set("PresentationType", "PDF")

	req, err := http.NewRequest(http.MethodGet, c.PDFBaseURL+"/Invoice2PdfServlet?"+params.Encode(), nil)
	if err != nil {
		return nil, &FetchError{InvoiceID: invoiceID, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("sessionId", c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{InvoiceID: invoiceID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{InvoiceID: invoiceID, StatusCode: resp.StatusCode}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{InvoiceID: invoiceID, Err: fmt.Errorf("read response body: %w", err)}
	}

	return pdf, nil
}

// createdTimeFilter builds the listing filter expression for a half-open
// date window: createdTime >= startDate and createdTime < endDate.
func createdTimeFilter(startDate, endDate string) string {
	return fmt.Sprintf(`createdTime:gte:"%s",createdTime:lt:"%s"`, startDate, endDate)
}
