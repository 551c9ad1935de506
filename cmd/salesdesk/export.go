package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"salesdesk/internal/model"
)

// exportPerPage is the page size used when walking the full result set.
const exportPerPage = 100

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching transactions to CSV",
		Long: `Walk every page of the filtered result set and write the records
to a CSV file (or stdout with --output -).`,
		RunE: runExport,
	}

	addFilterFlags(cmd)
	cmd.Flags().StringP("output", "o", "transactions.csv", "output file ('-' for stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	gateway, err := newGateway()
	if err != nil {
		return err
	}
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	out := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"transactionId", "customerId", "customerName", "phoneNumber",
		"productId", "productName", "employeeName", "quantity",
		"totalAmount", "finalAmount", "discount", "currency", "date",
		"orderStatus", "region", "gender", "age", "category",
		"paymentMethod", "tags",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	written := 0
	for pageNum := 1; ; pageNum++ {
		page, err := gateway.List(cmd.Context(), listParams(cmd, filters, pageNum, exportPerPage))
		if err != nil {
			return fmt.Errorf("failed to fetch page %d: %w", pageNum, err)
		}
		if bar == nil && output != "-" {
			bar = progressbar.NewOptions(page.Total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Exporting transactions..."),
			)
		}

		for _, txn := range page.Transactions {
			if err := w.Write(csvRecord(txn)); err != nil {
				return err
			}
			written++
			if bar != nil {
				_ = bar.Add(1)
			}
		}

		if pageNum >= page.TotalPages || len(page.Transactions) == 0 {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if output != "-" {
		fmt.Printf("wrote %d transactions to %s\n", written, output)
	}
	return nil
}

func csvRecord(t model.Transaction) []string {
	return []string{
		t.DisplayID(),
		t.CustomerID,
		t.CustomerName,
		t.PhoneNumber,
		t.ProductID,
		t.ProductName,
		t.EmployeeName,
		strconv.Itoa(t.Quantity),
		strconv.FormatFloat(float64(t.TotalAmount), 'f', 2, 64),
		strconv.FormatFloat(float64(t.FinalAmount), 'f', 2, 64),
		strconv.FormatFloat(float64(t.Discount), 'f', 2, 64),
		t.Currency,
		t.Date.ISO(),
		t.OrderStatus,
		t.Region,
		t.Gender,
		strconv.Itoa(t.Age),
		t.Category,
		t.PaymentMethod,
		strings.Join(t.Tags, ";"),
	}
}
