// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User represents a customer account. Name and Email are unique across the
// whole store; a user owns zero or more orders.
type User struct {
	ID      uint     // Store-generated primary key.
	Name    string   // Display name, 1-80 characters, globally unique.
	Address string   // Postal address, 1-255 characters.
	Email   string   // Contact email, globally unique.
	Orders  []*Order // Orders placed by this user. Empty until explicitly loaded.
}
