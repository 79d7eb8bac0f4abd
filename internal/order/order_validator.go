package order

import (
	"fmt"
	"strings"
)

// Rule violation messages. Text is part of the API contract; note that a
// zero total is accepted even though the message says "positive".
const (
	msgCustomerIDRequired = "Customer ID is required"
	msgItemsRequired      = "At least one item required"
	msgTotalAmount        = "Total amount must be positive"
	msgItemProductID      = "Item product ID is required"
	msgItemQuantity       = "Item quantity must be at least 1"
	msgItemPrice          = "Item price must not be negative"
)

// ValidateCreateOrder checks req against every business rule and returns the
// full list of violations. Every rule runs regardless of earlier failures;
// an empty result means the payload qualifies as an order. The total is not
// reconciled against the item lines.
func ValidateCreateOrder(req *CreateOrderRequest) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(req.CustomerID) == "" {
		errs = append(errs, ValidationError{Field: "customerId", Message: msgCustomerIDRequired})
	}
	if len(req.Items) == 0 {
		errs = append(errs, ValidationError{Field: "items", Message: msgItemsRequired})
	}
	if req.TotalAmount == nil || *req.TotalAmount < 0 {
		errs = append(errs, ValidationError{Field: "totalAmount", Message: msgTotalAmount})
	}

	for i, item := range req.Items {
		errs = append(errs, validateItem(i, item)...)
	}
	return errs
}

func validateItem(i int, item ItemRequest) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(item.ProductID) == "" {
		errs = append(errs, ValidationError{Field: itemField(i, "productId"), Message: msgItemProductID})
	}
	if item.Quantity < 1 {
		errs = append(errs, ValidationError{Field: itemField(i, "quantity"), Message: msgItemQuantity})
	}
	if item.Price == nil || *item.Price < 0 {
		errs = append(errs, ValidationError{Field: itemField(i, "price"), Message: msgItemPrice})
	}
	return errs
}

func itemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}
