package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"salesdesk/internal/model"
	"salesdesk/internal/query"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of transactions",
		RunE:  runList,
	}

	addFilterFlags(cmd)
	cmd.Flags().Int("page", 1, "page number")
	cmd.Flags().Int("per-page", query.DefaultPerPage, "rows per page")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	gateway, err := newGateway()
	if err != nil {
		return err
	}
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}
	pageNum, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")

	page, err := gateway.List(cmd.Context(), listParams(cmd, filters, pageNum, perPage))
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPRODUCT\tQTY\tAMOUNT\tDATE\tREGION\tSTATUS")
	for _, txn := range page.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			txn.DisplayID(),
			txn.CustomerName,
			txn.ProductName,
			txn.Quantity,
			model.FormatAmount(txn.TotalAmount, txn.Currency),
			txn.Date.Display(),
			txn.Region,
			txn.OrderStatus,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("page %d of %d (%d records)", pageNum, page.TotalPages, page.Total)
	if filters.Active() {
		summary += ", filters active"
	}
	fmt.Println(strings.TrimSpace(summary))
	return nil
}
