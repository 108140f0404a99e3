package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeStore reads the whole persisted document and returns the store.
// An empty document decodes to an empty store. A document that cannot be
// parsed reports ErrCorruptStore.
func DecodeStore(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read store: %w", ErrStorageUnavailable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewStore(), nil
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	return &Store{users: users}, nil
}

// EncodeStore serializes the whole store as one pretty-printed JSON document:
// an array of user records with fields in contract order (user_name, name,
// balance, transactions, items). Empty collections persist as [], never null.
func EncodeStore(w io.Writer, s *Store) error {
	users := s.users
	if users == nil {
		users = []User{}
	}
	for i := range users {
		if users[i].Transactions == nil {
			users[i].Transactions = make([]Transaction, 0)
		}
		if users[i].Items == nil {
			users[i].Items = make([]Item, 0)
		}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: could not write store: %w", ErrStorageUnavailable, err)
	}
	return nil
}
