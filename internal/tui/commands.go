package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"salesdesk/internal/model"
)

// fetchPage snapshots the coordinator state and queries the gateway.
// The sequence number rides along so stale responses can be discarded.
func (m Model) fetchPage() tea.Cmd {
	seq, params := m.coord.Begin()
	gw := m.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := gw.List(ctx, params)
		return pageLoadedMsg{seq: seq, page: page, err: err}
	}
}

// fetchStats loads the dataset-wide totals for the summary cards.
func (m Model) fetchStats() tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		stats, err := gw.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// saveTransaction creates or updates a record depending on whether it
// already has a server-assigned identifier.
func (m Model) saveTransaction(txn model.Transaction) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if txn.ID == "" {
			_, err := gw.Create(ctx, model.PrepareCreate(txn))
			return transactionSavedMsg{created: true, err: err}
		}
		_, err := gw.Update(ctx, txn.ID, model.PrepareUpdate(txn))
		return transactionSavedMsg{created: false, err: err}
	}
}

// deleteTransaction removes a record on the server.
func (m Model) deleteTransaction(id string) tea.Cmd {
	gw := m.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := gw.Delete(ctx, id)
		return transactionDeletedMsg{id: id, err: err}
	}
}

// clearStatusAfter fades the status line once the message has been seen.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
