package marketplace

import "sort"

// The report projections are pure functions of the store: they select and
// order data, rendering is the renderer package's concern. The Service
// wrappers load the store fresh for each report.

// UserSummary is one row of the user report.
type UserSummary struct {
	Username     string
	Name         string
	Balance      Money
	ItemsForSale int
}

// CatalogEntry is one row of the product report: an item with the user
// currently holding it.
type CatalogEntry struct {
	ID     int
	Name   string
	Seller string
	Price  Money
}

// UserSummaries projects one row per user, in store order.
func UserSummaries(s *Store) []UserSummary {
	rows := make([]UserSummary, 0, s.Len())
	for _, u := range s.Users() {
		rows = append(rows, UserSummary{
			Username:     u.Username,
			Name:         u.Name,
			Balance:      u.Balance,
			ItemsForSale: len(u.Items),
		})
	}
	return rows
}

// Catalog projects every item across every user, in store order.
func Catalog(s *Store) []CatalogEntry {
	var rows []CatalogEntry
	for _, u := range s.Users() {
		for _, item := range u.Items {
			rows = append(rows, CatalogEntry{
				ID:     item.ID,
				Name:   item.Name,
				Seller: u.Username,
				Price:  item.Price,
			})
		}
	}
	return rows
}

// TransactionHistory flattens every user's transaction log and sorts it
// ascending by timestamp. The sort is stable: records with equal timestamps
// keep their original append order.
func TransactionHistory(s *Store) []Transaction {
	var txs []Transaction
	for _, u := range s.Users() {
		txs = append(txs, u.Transactions...)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

// UserSummaries loads the store fresh and returns the user report rows.
func (s *Service) UserSummaries() ([]UserSummary, error) {
	store, err := s.Repo.Load()
	if err != nil {
		return nil, err
	}
	return UserSummaries(store), nil
}

// Catalog loads the store fresh and returns the product report rows.
func (s *Service) Catalog() ([]CatalogEntry, error) {
	store, err := s.Repo.Load()
	if err != nil {
		return nil, err
	}
	return Catalog(store), nil
}

// TransactionHistory loads the store fresh and returns all transactions in
// display order.
func (s *Service) TransactionHistory() ([]Transaction, error) {
	store, err := s.Repo.Load()
	if err != nil {
		return nil, err
	}
	return TransactionHistory(store), nil
}
