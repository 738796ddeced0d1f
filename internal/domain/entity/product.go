package entity

// Product represents a purchasable item. Product names are not unique; two
// sellers may list the same name at different prices.
type Product struct {
	ID    uint    // Store-generated primary key.
	Name  string  // Product name, 1-120 characters.
	Price float64 // Unit price, never below 0.01.
}
