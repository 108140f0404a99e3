package marketplace

import (
	"iter"
	"slices"
)

// Store is the full collection of users: the single unit of persistence and
// the sole source of truth. Every operation re-reads the entire store before
// mutating and rewrites the entire store after.
//
// Lookups return indices into the owned user slice so that every mutation is
// an explicit write-back to s.users[i], never a shared-pointer side effect.
type Store struct {
	users []User
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make([]User, 0)}
}

// Len returns the number of users in the store.
func (s *Store) Len() int { return len(s.users) }

// Users returns an iterator over users in store order.
func (s *Store) Users() iter.Seq2[int, User] {
	return func(yield func(int, User) bool) {
		for i, u := range s.users {
			if !yield(i, u) {
				return
			}
		}
	}
}

// indexOf returns the position of the user with this username, or -1.
func (s *Store) indexOf(username string) int {
	return slices.IndexFunc(s.users, func(u User) bool {
		return u.Username == username
	})
}

// UserExists reports whether a username is taken.
func (s *Store) UserExists(username string) bool {
	return s.indexOf(username) >= 0
}

// User returns a copy of the user with this username.
func (s *Store) User(username string) (User, bool) {
	i := s.indexOf(username)
	if i < 0 {
		return User{}, false
	}
	return s.users[i], true
}

// AddUser appends a user to the store. The caller must have checked the
// username for uniqueness.
func (s *Store) AddUser(u User) {
	s.users = append(s.users, u)
}

// RemoveUser removes the user with this username, cascading their whole
// inventory out of the store. The item ids they held become available again.
// References to the username in other users' transaction logs are kept as
// historical record. It reports whether the user existed.
func (s *Store) RemoveUser(username string) bool {
	i := s.indexOf(username)
	if i < 0 {
		return false
	}
	s.users = slices.Delete(s.users, i, i+1)
	return true
}

// ItemIDs flattens every user's inventory and returns the set of item ids in
// use across the store.
func (s *Store) ItemIDs() map[int]struct{} {
	ids := make(map[int]struct{})
	for _, u := range s.users {
		for _, item := range u.Items {
			ids[item.ID] = struct{}{}
		}
	}
	return ids
}

// ItemIDExists reports whether an item id is already allocated.
func (s *Store) ItemIDExists(id int) bool {
	_, ok := s.ItemIDs()[id]
	return ok
}

// holder locates the item with this id and returns the index of the user
// holding it and the index of the item within that user's inventory.
func (s *Store) holder(itemID int) (user, item int, ok bool) {
	for i, u := range s.users {
		for j, it := range u.Items {
			if it.ID == itemID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
