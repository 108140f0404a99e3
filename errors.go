package marketplace

import "errors"

// Domain errors are expected and recoverable: the operation reports them and
// leaves the store untouched. Storage errors abort the operation before any
// mutation is attempted. All are sentinels, matched with errors.Is.
var (
	// ErrDuplicateUsername reports an attempt to create a user with a taken username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrUserNotFound reports an operation on a username absent from the store.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound reports a purchase of an item id no inventory holds.
	ErrItemNotFound = errors.New("item not found")
	// ErrSelfTrade reports a purchase where the buyer already holds the item.
	ErrSelfTrade = errors.New("buyer already owns this item")
	// ErrInsufficientFunds reports a purchase the buyer cannot pay for.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrIDSpaceExhausted reports that every item id in [0, MaxItemID] is in use.
	ErrIDSpaceExhausted = errors.New("no item ids left to allocate")

	// ErrStorageUnavailable reports that the store file cannot be read or written.
	ErrStorageUnavailable = errors.New("store unavailable")
	// ErrCorruptStore reports that the store file cannot be decoded.
	ErrCorruptStore = errors.New("store is corrupt")
)
