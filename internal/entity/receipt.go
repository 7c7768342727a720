package entity

import "time"

// Item is one purchased product line recovered from a receipt.
// Price is the unit price; line totals are computed at presentation time.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

// Receipt is the assembled result of one parse invocation.
// It is immutable after assembly; callers display it for human confirmation.
type Receipt struct {
	StoreName   string    `json:"storeName"`
	Items       []Item    `json:"items"`
	TotalAmount float64   `json:"totalAmount"`
	Date        time.Time `json:"date"`
}

// LineTotal returns the item's price multiplied by its quantity.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ItemsSum sums the line totals of all items. Callers may use it as a
// fallback when TotalAmount is 0 (no explicit total found on the receipt).
func (r *Receipt) ItemsSum() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.LineTotal()
	}
	return sum
}
