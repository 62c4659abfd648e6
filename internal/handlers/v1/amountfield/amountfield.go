// Package amountfield is the request type for amounts in the v1 JSON API.
package amountfield

import (
	"bytes"
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/tally-server/internal/amount"
)

// Text is an amount as sent by a client. It accepts a JSON string or a JSON
// number and keeps the raw text, so coercion matches the HTML form.
type Text string

// Schema lets Huma validate either form before the body is decoded.
func (Text) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// Amount coerces the text. An omitted field is zero, like an untouched form
// field; anything else goes through amount.Parse.
func (t Text) Amount() amount.Amount {
	if t == "" {
		return amount.Zero()
	}
	return amount.Parse(string(t))
}
