package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidPaymentPayload = errors.New("invalid payment payload")

// PaymentCreateRequest wraps a Mercado Pago payment body. The provider payload may
// also be posted bare, without the mp_payload envelope.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParsePaymentPayload extracts the provider payload from a request body. An empty
// body yields "{}".
func ParsePaymentPayload(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			wrapped = bytes.TrimSpace(wrapped)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, ErrInvalidPaymentPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
