package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func factoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factory",
		Short: "Construct cars and named views through factories",
		RunE: func(c *cobra.Command, _ []string) error {
			root := newRoot()

			cars := root.CreateCarFactory()
			electric, err := cars.Make(map[string]string{
				"battery": "LiFePO4",
				"engine":  "electric",
				"wheels":  "4",
			})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetTitle("assembled car")
			t.AppendHeader(table.Row{"Component", "Value"})
			for name, value := range electric.Components() {
				t.AppendRow(table.Row{name, value})
			}
			t.Render()

			// An empty component set is rejected, not silently accepted.
			if _, err = cars.Make(nil); err != nil {
				c.Printf("empty component set: %v\n", err)
			}

			views, err := root.CreateViewFactory()
			if err != nil {
				return err
			}

			sticker, err := views.Make("car.sticker", electric.Components())
			if err != nil {
				return err
			}
			rendered, err := sticker.Render()
			if err != nil {
				return err
			}
			c.Println(rendered)

			// Asking for an unregistered view name fails with NotFound.
			if _, err = views.Make("car.poster", nil); err != nil {
				c.Printf("unknown view: %v\n", err)
			}
			return nil
		},
	}
}
