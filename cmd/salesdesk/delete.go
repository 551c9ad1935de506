package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"salesdesk/internal/common"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by its storage ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if skip, _ := cmd.Flags().GetBool("yes"); !skip {
		fmt.Printf("Delete transaction %s? This cannot be undone. [y/N] ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	gateway, err := newGateway()
	if err != nil {
		return err
	}

	if err := gateway.Delete(cmd.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("transaction %s not found", id)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	fmt.Printf("deleted transaction %s\n", id)
	return nil
}
