package order

import "encoding/json"

// CreateOrderRequest is the JSON payload for POST /orders. TotalAmount and
// item Price are pointers so an absent key fails the same rule, with the same
// message, as an invalid value.
type CreateOrderRequest struct {
	CustomerID  string        `json:"customerId"`
	Items       []ItemRequest `json:"items"`
	TotalAmount *float64      `json:"totalAmount"`
}

// UnmarshalJSON decodes each field independently and degrades a wrong-typed
// value to the field's zero value, so validation reports it exactly like an
// absent one. Only a body that is not a JSON object at all fails to decode.
func (r *CreateOrderRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		CustomerID  json.RawMessage `json:"customerId"`
		Items       json.RawMessage `json:"items"`
		TotalAmount json.RawMessage `json:"totalAmount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	_ = json.Unmarshal(raw.CustomerID, &r.CustomerID)
	_ = json.Unmarshal(raw.Items, &r.Items)
	_ = json.Unmarshal(raw.TotalAmount, &r.TotalAmount)
	return nil
}

// ItemRequest is one requested product line.
type ItemRequest struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
}

// UnmarshalJSON mirrors CreateOrderRequest: a wrong-typed item field is left
// at its zero value for validation to flag, instead of failing the decode.
func (i *ItemRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProductID json.RawMessage `json:"productId"`
		Quantity  json.RawMessage `json:"quantity"`
		Price     json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	_ = json.Unmarshal(raw.ProductID, &i.ProductID)
	_ = json.Unmarshal(raw.Quantity, &i.Quantity)
	_ = json.Unmarshal(raw.Price, &i.Price)
	return nil
}

// ValidationError is one field-level rule violation. A rejected request
// carries every violation found, not just the first.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
