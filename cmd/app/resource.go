package main

import (
	"os"

	"patternbook/internal/core/application/usecases/queries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func resourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resource",
		Short: "Project stored orders into output views",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			root := newRoot()
			if err := root.SeedOrders(ctx); err != nil {
				return err
			}

			handler := root.CreateListOrderViewsQueryHandler()
			collection, err := handler.Handle(ctx, queries.NewListOrderViewsQuery())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetTitle("order views")
			t.AppendHeader(table.Row{"ID", "Client", "Fulfilled", "Generated at"})
			for _, view := range collection.Data {
				t.AppendRow(table.Row{view.ID, view.Client, view.Fulfilled, view.GeneratedAt.Format("15:04:05")})
			}
			t.Render()

			for rel, href := range collection.Links {
				c.Printf("link %s: %s\n", rel, href)
			}
			return nil
		},
	}
}
