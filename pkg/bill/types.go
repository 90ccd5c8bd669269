package bill

import (
	"fmt"
	"strings"
)

// Invoice is a single invoice record as returned by the listing endpoint.
// The API's field set is open-ended, so the record is kept as an opaque
// key/value bag and passed through to the metadata export verbatim; only
// the id and invoiceDate fields are ever interpreted.
type Invoice map[string]any

// ID returns the invoice's unique identifier, or "" if absent.
func (inv Invoice) ID() string {
	id, _ := inv["id"].(string)
	return id
}

// InvoiceDate returns the invoice's date field as a trimmed string, or ""
// if absent. Non-string date values are stringified rather than rejected.
func (inv Invoice) InvoiceDate() string {
	v, ok := inv["invoiceDate"]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// listResponse is one page of the invoices listing endpoint. An empty
// NextPage means this is the last page.
type listResponse struct {
	Results  []Invoice `json:"results"`
	NextPage string    `json:"nextPage"`
}

// loginRequest is the body of the v3 login call.
type loginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	OrganizationID string `json:"organizationId"`
	DevKey         string `json:"devKey"`
}

// loginResponse is the body of a successful v3 login call.
type loginResponse struct {
	SessionID string `json:"sessionId"`
}
