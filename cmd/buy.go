package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telmo/marketplace"
)

type buyCmd struct {
	buyer string
	item  int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an item from another user" }
func (*buyCmd) Usage() string {
	return `mkt buy -buyer <username> -item <id>

  Transfers the item to the buyer's inventory, moves its price from the
  buyer's balance to the seller's, and records the transaction in the
  buyer's history. An item cannot be bought from oneself.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyer, "buyer", "", "Username of the buyer.")
	f.IntVar(&c.item, "item", -1, "Id of the item to buy.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.buyer == "" || c.item < 0 {
		fmt.Fprintln(os.Stderr, "Error: -buyer and -item are required.")
		return subcommands.ExitUsageError
	}

	if _, err := openService().Purchase(c.buyer, c.item); err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			fmt.Println("Cannot find user with username given!")
		} else {
			reportError(err)
		}
		return subcommands.ExitFailure
	}
	fmt.Println("Transaction successful. Thanks for your order!")
	return subcommands.ExitSuccess
}
