package entities

import "time"

// Client is a customer of an organization.
//
// Uniqueness is not enforced by any key: matching goes through the normalized
// forms of Email, Name and Phone (see NormalizeEmail, NormalizeName, NormalizePhone).
type Client struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NameKey, EmailKey and PhoneKey are the indexed lookup forms.
func (c Client) NameKey() string  { return NormalizeName(c.Name) }
func (c Client) EmailKey() string { return NormalizeEmail(c.Email) }
func (c Client) PhoneKey() string { return NormalizePhone(c.Phone) }
