package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"salesdesk/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dataset-wide totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gateway, err := newGateway()
			if err != nil {
				return err
			}

			stats, err := gateway.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}

			fmt.Printf("Total units:    %d\n", stats.TotalUnits)
			fmt.Printf("Total sales:    %s\n", model.FormatRounded(stats.TotalAmount))
			fmt.Printf("Total discount: %s\n", model.FormatRounded(stats.TotalDiscount))
			return nil
		},
	}
}

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the server's filter vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gateway, err := newGateway()
			if err != nil {
				return err
			}

			opts, err := gateway.Options(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch filter options: %w", err)
			}

			for _, group := range []struct {
				name   string
				values []string
			}{
				{"Regions", opts.Regions},
				{"Genders", opts.Genders},
				{"Categories", opts.Categories},
				{"Tags", opts.Tags},
				{"Payment methods", opts.PaymentMethods},
			} {
				fmt.Printf("%s:\n", group.name)
				for _, v := range group.values {
					fmt.Printf("  - %s\n", v)
				}
			}
			return nil
		},
	}
}
