// Package renderer turns report rows into markdown tables.
//
// The column sets and their order are part of the report contract; the
// renderer adds no data of its own.
package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/telmo/marketplace"
)

// txDateLayout is the display format for transaction dates.
const txDateLayout = "Mon Jan 2 2006"

// Users renders the user log as a markdown table.
func Users(rows []marketplace.UserSummary) string {
	table := md.TableSet{
		Header: []string{"user_name", "name", "balance", "Items for sale"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Username,
			r.Name,
			r.Balance.String(),
			strconv.Itoa(r.ItemsForSale),
		})
	}
	return render("User Log", table)
}

// Products renders every item for sale with its seller.
func Products(rows []marketplace.CatalogEntry) string {
	table := md.TableSet{
		Header: []string{"id", "name", "seller", "price"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Seller,
			r.Price.String(),
		})
	}
	return render("Item Log", table)
}

// Transactions renders the purchase history. Rows are expected in display
// order already (ascending by date).
func Transactions(rows []marketplace.Transaction) string {
	table := md.TableSet{
		Header: []string{"Item ID", "seller", "buyer", "price", "date"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.ItemID),
			r.Seller,
			r.Buyer,
			r.Price.String(),
			r.Date.Format(txDateLayout),
		})
	}
	return render("Transaction Log", table)
}

// All renders the three reports as one document.
func All(users []marketplace.UserSummary, products []marketplace.CatalogEntry, txs []marketplace.Transaction) string {
	return Users(users) + Products(products) + Transactions(txs)
}

func render(title string, table md.TableSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(table)
	return doc.String()
}
