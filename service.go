package marketplace

import (
	"fmt"
	"slices"
	"time"
)

// DefaultBalance is the balance granted to a user created without an
// explicit starting amount.
var DefaultBalance = M(100)

// Service runs the marketplace operations. Every public operation follows
// the same cycle: load the whole store, validate, mutate in memory, save the
// whole store once. All validation happens before any mutation, so a failed
// operation leaves the persisted store untouched.
type Service struct {
	Repo Repository
	IDs  IDAllocator
	Now  func() time.Time
}

// NewService creates a service over a repository, with the random id
// allocator and the wall clock.
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
		IDs:  NewRandomAllocator(MaxItemID),
		Now:  time.Now,
	}
}

// CreateUser adds a new user with an empty transaction log and inventory.
// A nil balance means DefaultBalance. The display name needs no uniqueness;
// the username does: a taken one reports ErrDuplicateUsername.
func (s *Service) CreateUser(displayName, username string, balance *Money) (User, error) {
	store, err := s.Repo.Load()
	if err != nil {
		return User{}, err
	}
	if store.UserExists(username) {
		return User{}, fmt.Errorf("create user %q: %w", username, ErrDuplicateUsername)
	}
	b := DefaultBalance
	if balance != nil {
		b = *balance
	}
	u := NewUser(displayName, username, b)
	store.AddUser(u)
	if err := s.Repo.Save(store); err != nil {
		return User{}, err
	}
	return u, nil
}

// DeleteUser removes a user and, with them, every item in their inventory.
// Their username may linger in other users' transaction logs; those records
// are kept as historical fact.
func (s *Service) DeleteUser(username string) error {
	store, err := s.Repo.Load()
	if err != nil {
		return err
	}
	if !store.RemoveUser(username) {
		return fmt.Errorf("delete user %q: %w", username, ErrUserNotFound)
	}
	return s.Repo.Save(store)
}

// AddItem lists a new item in the owner's inventory under a freshly
// allocated unique id. It reports ErrUserNotFound for an unknown owner and
// ErrIDSpaceExhausted when all MaxItemID+1 ids are in use.
func (s *Service) AddItem(itemName, owner string, price Money) (Item, error) {
	if price.IsNegative() {
		return Item{}, fmt.Errorf("add item %q: price %s cannot be negative", itemName, price)
	}
	store, err := s.Repo.Load()
	if err != nil {
		return Item{}, err
	}
	i := store.indexOf(owner)
	if i < 0 {
		return Item{}, fmt.Errorf("add item for %q: %w", owner, ErrUserNotFound)
	}
	id, err := s.IDs.Allocate(store.ItemIDs())
	if err != nil {
		return Item{}, fmt.Errorf("add item %q: %w", itemName, err)
	}
	item := Item{ID: id, Name: itemName, Price: price}
	store.users[i].Items = append(store.users[i].Items, item)
	if err := s.Repo.Save(store); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Purchase executes a purchase of the item with this id by the buyer.
//
// Checks run in order: buyer exists, item exists, buyer is not the holder,
// buyer can pay. Ownership and the self-trade check coincide, so a buyer can
// never re-buy an item already in their inventory. Only then does the
// transfer happen, all in memory before the single save: debit buyer, credit
// seller, move the item unchanged, append one transaction record to the
// buyer's log.
func (s *Service) Purchase(buyer string, itemID int) (Transaction, error) {
	store, err := s.Repo.Load()
	if err != nil {
		return Transaction{}, err
	}
	b := store.indexOf(buyer)
	if b < 0 {
		return Transaction{}, fmt.Errorf("buy item %d: buyer %q: %w", itemID, buyer, ErrUserNotFound)
	}
	sl, it, ok := store.holder(itemID)
	if !ok {
		return Transaction{}, fmt.Errorf("buy item %d: %w", itemID, ErrItemNotFound)
	}
	if sl == b {
		return Transaction{}, fmt.Errorf("buy item %d: %w", itemID, ErrSelfTrade)
	}
	item := store.users[sl].Items[it]
	if store.users[b].Balance.LessThan(item.Price) {
		return Transaction{}, fmt.Errorf("buy item %d: balance %s below price %s: %w",
			itemID, store.users[b].Balance, item.Price, ErrInsufficientFunds)
	}

	store.users[b].Balance = store.users[b].Balance.Sub(item.Price)
	store.users[sl].Balance = store.users[sl].Balance.Add(item.Price)
	store.users[sl].Items = slices.Delete(store.users[sl].Items, it, it+1)
	tx := Transaction{
		ItemID: item.ID,
		Seller: store.users[sl].Username,
		Buyer:  store.users[b].Username,
		Price:  item.Price,
		Date:   s.Now(),
	}
	store.users[b].Transactions = append(store.users[b].Transactions, tx)
	store.users[b].Items = append(store.users[b].Items, item)

	if err := s.Repo.Save(store); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}
