package marketplace

import "time"

// Item is a listing in a user's inventory.
//
// Item ids are globally unique across the store at any instant, drawn from
// the bounded range [0, MaxItemID]. An item belongs to exactly one user; the
// model does not distinguish "listed for sale" from "bought and held".
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// Transaction records a completed purchase. It is immutable once created and
// lives in the buyer's log only; the seller keeps no copy.
type Transaction struct {
	ItemID int       `json:"itemId"`
	Seller string    `json:"seller"`
	Buyer  string    `json:"buyer"`
	Price  Money     `json:"price"`
	Date   time.Time `json:"date"`
}

// User is one account in the store.
//
// The username is the identity key: globally unique and immutable. The
// transaction log is append-only and never reordered in storage; ordering
// for display is a read-time concern.
type User struct {
	Username     string        `json:"user_name"`
	Name         string        `json:"name"`
	Balance      Money         `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	Items        []Item        `json:"items"`
}

// NewUser creates a user with an empty transaction log and inventory.
func NewUser(name, username string, balance Money) User {
	return User{
		Username:     username,
		Name:         name,
		Balance:      balance,
		Transactions: make([]Transaction, 0),
		Items:        make([]Item, 0),
	}
}
