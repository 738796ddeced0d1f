package entity

import "time"

// Order links a user to the products they purchased. The order date is
// assigned by the store at creation time and is read-only to clients.
//
// Orders currently exist only as part of the data model; no HTTP routes
// operate on them. They are a deliberate extension point, not hidden scope.
type Order struct {
	ID        uint       // Store-generated primary key.
	OrderDate time.Time  // Assigned by the store at creation.
	UserID    uint       // Owning user; an order cannot exist without one.
	Products  []*Product // Products in this order via the order_product association.
}
