package store

import "fmt"

// StockExceededError is returned when a requested quantity would pass the
// stock ceiling supplied by the caller. The cart is left untouched.
type StockExceededError struct {
	ProductID int64
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("product %d: requested quantity exceeds available stock (%d)", e.ProductID, e.Available)
}
