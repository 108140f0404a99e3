package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/telmo/marketplace/renderer"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "show the user, product or transaction reports" }
func (*viewCmd) Usage() string {
	return `mkt view [all|users|products|transactions]

  Prints read-only reports over the store. "users" lists every account
  with its balance and inventory size, "products" lists every item for
  sale with its seller, "transactions" lists the purchase history in
  chronological order. "all" (the default) prints the three in sequence.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view := "all"
	if f.NArg() > 0 {
		view = f.Arg(0)
	}
	svc := openService()

	// Each report loads the store fresh, as an independent read.
	switch view {
	case "users":
		rows, err := svc.UserSummaries()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Users(rows))
	case "products":
		rows, err := svc.Catalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Products(rows))
	case "transactions":
		rows, err := svc.TransactionHistory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Transactions(rows))
	case "all":
		users, err := svc.UserSummaries()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		products, err := svc.Catalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		txs, err := svc.TransactionHistory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.All(users, products, txs))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown view %q, want all, users, products or transactions.\n", view)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
