package domain

import (
	"fmt"
	"time"
)

// Product is a catalog entry owned by the remote backend. Screens never
// mutate a Product directly; all changes go through dispatch operations.
type Product struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	ImageURL    string
	Price       float64
}

// CartLine is one product's position in the cart, keyed by ProductID.
// Quantity is always >= 1; a removal that would reach zero deletes the line.
type CartLine struct {
	ProductID    string
	ProductTitle string
	ProductPrice float64
	Quantity     int
	Sum          float64
}

// Order is an immutable entry in the user's order history.
type Order struct {
	ID          string
	Items       []CartLine
	TotalAmount float64
	Date        time.Time
}

// ReadableDate renders the order date for display.
func (o Order) ReadableDate() string {
	return o.Date.Format("January 2 2006, 15:04")
}

// FormatAmount renders a money amount with a dollar sign and two decimal
// places, locale-independent.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
