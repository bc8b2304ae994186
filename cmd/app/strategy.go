package main

import (
	"os"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/services"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func strategyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategy",
		Short: "Quote one delivery with interchangeable strategies",
		RunE: func(c *cobra.Command, _ []string) error {
			root := newRoot()

			electric, err := root.CreateCarFactory().Make(map[string]string{
				"battery": "LiFePO4",
				"engine":  "electric",
			})
			if err != nil {
				return err
			}

			delivery, err := services.NewCarDelivery(electric)
			if err != nil {
				return err
			}

			ship, err := root.CreateShipDelivery()
			if err != nil {
				return err
			}
			air, err := root.CreateAirDelivery()
			if err != nil {
				return err
			}

			destination, err := kernel.NewAddress(8, 9)
			if err != nil {
				return err
			}

			byShip, err := delivery.DeliverCar(ship, destination)
			if err != nil {
				return err
			}
			byAir, err := delivery.DeliverCar(air, destination)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetTitle("delivery quotes to " + destination.String())
			t.AppendHeader(table.Row{"Strategy", "Quote"})
			t.AppendRow(table.Row{"ship", byShip.String()})
			t.AppendRow(table.Row{"air", byAir.String()})
			t.Render()

			// The context refuses to run without a strategy.
			if _, err = delivery.DeliverCar(nil, destination); err != nil {
				c.Printf("missing strategy: %v\n", err)
			}
			return nil
		},
	}
}
