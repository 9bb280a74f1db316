package domain

// CartItem is one row of an anonymous session's cart. ProductID is a
// weak reference into the catalog; the product may have been deleted
// since the row was created.
type CartItem struct {
	ID        int    `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartEntry is a cart item joined with its product for storefront
// display. Product is nil when the referenced product no longer exists.
type CartEntry struct {
	CartItem
	Product *Product `json:"product"`
}
