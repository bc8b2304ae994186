package main

import (
	"os"

	"patternbook/internal/core/domain/model/order"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func repositoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repository",
		Short: "Order CRUD behind a storage port",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			root := newRoot()
			if err := root.SeedOrders(ctx); err != nil {
				return err
			}

			repo := root.OrderRepository()

			created, err := repo.Create(ctx, "walk-in client", map[string]string{"item": "anvil"})
			if err != nil {
				return err
			}
			c.Printf("created order %s\n", created.ID())

			client := "returning client"
			updated, err := repo.Update(ctx, created.ID(), order.OrderChange{
				Client:  &client,
				Details: map[string]string{"quantity": "2"},
			})
			if err != nil {
				return err
			}
			c.Printf("updated order %s: client=%s details=%v\n",
				updated.ID(), updated.Client(), updated.Details())

			if err = repo.Delete(ctx, created.ID()); err != nil {
				return err
			}
			c.Printf("deleted order %s\n", created.ID())

			// A second delete must fail with NotFound; the demo reports it
			// and carries on.
			if err = repo.Delete(ctx, created.ID()); err != nil {
				c.Printf("delete again: %v\n", err)
			}

			orders, err := repo.ListAll(ctx)
			if err != nil {
				return err
			}
			fulfilled, err := repo.GetFulfilled(ctx)
			if err != nil {
				return err
			}

			printOrders("all orders", orders)
			printOrders("fulfilled orders", fulfilled)
			return nil
		},
	}
}

func printOrders(title string, orders []*order.Order) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"ID", "Client", "Fulfilled", "Details"})
	for _, o := range orders {
		t.AppendRow(table.Row{o.ID().String(), o.Client(), o.Fulfilled(), o.Details()})
	}
	t.Render()
}
