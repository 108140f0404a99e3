package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/telmo/marketplace"
)

type listCmd struct {
	name  string
	owner string
	price string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list an item for sale" }
func (*listCmd) Usage() string {
	return `mkt list -name <item name> -owner <username> -price <amount>

  Adds an item to the owner's inventory under a fresh unique id. Ids are
  drawn from the range 0..100; once all of them are in use no item can be
  listed until one is freed.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item to list.")
	f.StringVar(&c.owner, "owner", "", "Username of the item's owner.")
	f.StringVar(&c.price, "price", "", "Asking price for the item.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.owner == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -owner and -price are required.")
		return subcommands.ExitUsageError
	}
	d, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	item, err := openService().AddItem(c.name, c.owner, marketplace.M(d))
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Listed %q (id %d) for %s.\n", item.Name, item.ID, item.Price)
	return subcommands.ExitSuccess
}
