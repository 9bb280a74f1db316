package domain

import "time"

// Order statuses. Transitions are enforced by the order service:
// Processing -> In Transit -> Delivered, with Cancelled reachable from
// any non-terminal status.
const (
	StatusProcessing = "Processing"
	StatusInTransit  = "In Transit"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

var OrderStatuses = []string{StatusProcessing, StatusInTransit, StatusDelivered, StatusCancelled}

type Order struct {
	ID              int       `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	Total           string    `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	// Items is a JSON-encoded snapshot of the cart at checkout time.
	// Later product edits or deletes never touch it.
	Items string `json:"items"`
}

// OrderItem is one line of the frozen items snapshot.
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}
