// Package tui is the interactive transaction dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"salesdesk/internal/common"
	"salesdesk/internal/model"
	"salesdesk/internal/query"
	"salesdesk/internal/service"
	"salesdesk/internal/tui/components"
	"salesdesk/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

const (
	StateBrowsing State = iota
	StateSearching
	StateFiltering
	StateSorting
	StateForm
	StateConfirmDelete
	StateDetail
	StateHelp
)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	config      Config
	keymap      KeyMap
	gateway     service.Gateway
	coord       *query.Coordinator
	table       components.TransactionTable
	statsPanel  components.StatsPanel
	pagination  components.PaginationBar
	filterPanel components.FilterPanel
	sortMenu    components.SortMenu
	form        components.TransactionForm
	detail      components.DetailView
	confirm     components.ConfirmDelete
	searchInput textinput.Model
	status      string
	statusError bool
	width       int
	height      int
	state       State
	quitting    bool
	ready       bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search customer or phone..."
	search.CharLimit = 60
	search.Width = 40

	return Model{
		theme:       cfg.Theme,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		gateway:     cfg.Gateway,
		coord:       query.NewCoordinator(cfg.Gateway, cfg.PerPage),
		table:       components.NewTransactionTable(cfg.Theme),
		statsPanel:  components.NewStatsPanel(cfg.Theme),
		pagination:  components.NewPaginationBar(cfg.Theme),
		searchInput: search,
		width:       cfg.Width,
		height:      cfg.Height,
		state:       StateBrowsing,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchPage(),
		m.fetchStats(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case pageLoadedMsg:
		if m.coord.Resolve(msg.seq, msg.page, msg.err) {
			snap := m.coord.Snapshot()
			m.table.SetTransactions(snap.Transactions)
			m.statsPanel.SetPage(snap.Transactions)
			m.pagination.SetPage(snap.Page, snap.TotalPages, snap.Total)
			m.ready = true
		}
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			common.LogError(msg.err, "stats fetch failed", nil)
			m.statsPanel.SetUnavailable()
			return m, nil
		}
		m.statsPanel.SetGlobal(msg.stats)
		return m, nil

	case transactionSavedMsg:
		if msg.err != nil {
			return m.setStatus("Save failed: "+msg.err.Error(), true)
		}
		m.state = StateBrowsing
		text := "Transaction updated"
		if msg.created {
			text = "Transaction created"
		}
		next, cmd := m.setStatus(text, false)
		return next, tea.Batch(cmd, m.fetchPage(), m.fetchStats())

	case transactionDeletedMsg:
		if msg.err != nil {
			return m.setStatus("Delete failed: "+msg.err.Error(), true)
		}
		m.state = StateBrowsing
		next, cmd := m.setStatus("Transaction deleted", false)
		return next, tea.Batch(cmd, m.fetchPage(), m.fetchStats())

	case statusMsg:
		return m.setStatus(msg.text, msg.isError)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case components.FilterAppliedMsg:
		m.coord.SetFilters(msg.Filters)
		m.state = StateBrowsing
		return m, m.fetchPage()

	case components.FilterCancelledMsg, components.SortCancelledMsg, components.FormCancelledMsg:
		m.state = StateBrowsing
		return m, nil

	case components.SortChosenMsg:
		m.coord.SetSort(msg.Key)
		m.state = StateBrowsing
		return m, m.fetchPage()

	case components.FormSubmittedMsg:
		m.state = StateBrowsing
		return m, m.saveTransaction(msg.Transaction)

	case components.DeleteConfirmedMsg:
		m.state = StateBrowsing
		return m, m.deleteTransaction(msg.ID)

	case components.DeleteCancelledMsg:
		m.state = StateBrowsing
		return m, nil
	}

	switch m.state {
	case StateBrowsing:
		return m.updateBrowsing(msg)
	case StateSearching:
		return m.updateSearching(msg)
	case StateFiltering:
		var cmd tea.Cmd
		m.filterPanel, cmd = m.filterPanel.Update(msg)
		return m, cmd
	case StateSorting:
		var cmd tea.Cmd
		m.sortMenu, cmd = m.sortMenu.Update(msg)
		return m, cmd
	case StateForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case StateConfirmDelete:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	case StateDetail:
		return m.updateDetail(msg)
	case StateHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = StateBrowsing
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	snap := m.coord.Snapshot()

	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(keyMsg, m.keymap.Refresh):
		return m, tea.Batch(m.fetchPage(), m.fetchStats())

	case key.Matches(keyMsg, m.keymap.PrevPage):
		if snap.Page > 1 {
			m.coord.SetPage(snap.Page - 1)
			return m, m.fetchPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.NextPage):
		if snap.Page < snap.TotalPages {
			m.coord.SetPage(snap.Page + 1)
			return m, m.fetchPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.Home):
		if snap.Page != 1 {
			m.coord.SetPage(1)
			return m, m.fetchPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.End):
		if snap.Page != snap.TotalPages {
			m.coord.SetPage(snap.TotalPages)
			return m, m.fetchPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.ToggleSearch):
		m.state = StateSearching
		m.searchInput.SetValue(snap.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keymap.ToggleFilter):
		m.filterPanel = components.NewFilterPanel(snap.Filters, m.theme)
		m.filterPanel.Resize(m.width, m.height)
		m.state = StateFiltering
		return m, nil

	case key.Matches(keyMsg, m.keymap.ToggleSort):
		m.sortMenu = components.NewSortMenu(snap.Filters.Sort, m.theme)
		m.sortMenu.Resize(m.width, m.height)
		m.state = StateSorting
		return m, nil

	case key.Matches(keyMsg, m.keymap.ToggleStats):
		m.config.ShowStats = !m.config.ShowStats
		return m, nil

	case key.Matches(keyMsg, m.keymap.Reset):
		m.coord.ResetFilters()
		return m, m.fetchPage()

	case key.Matches(keyMsg, m.keymap.Add):
		m.form = components.NewTransactionForm(model.NewDraft(), m.theme)
		m.form.Resize(m.width, m.height)
		m.state = StateForm
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keymap.Edit):
		if txn, ok := m.table.Selected(); ok {
			m.form = components.NewTransactionForm(txn, m.theme)
			m.form.Resize(m.width, m.height)
			m.state = StateForm
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.Delete):
		if txn, ok := m.table.Selected(); ok {
			m.confirm = components.NewConfirmDelete(txn, m.theme)
			m.confirm.Resize(m.width, m.height)
			m.state = StateConfirmDelete
		}
		return m, nil

	case key.Matches(keyMsg, m.keymap.Select):
		if txn, ok := m.table.Selected(); ok {
			m.detail = components.NewDetailView(txn, m.theme)
			m.detail.Resize(m.width, m.height)
			m.state = StateDetail
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearching(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		m.coord.SetSearch(m.searchInput.Value())
		m.searchInput.Blur()
		m.state = StateBrowsing
		return m, m.fetchPage()
	case "esc":
		m.searchInput.Blur()
		m.state = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Back), key.Matches(keyMsg, m.keymap.Quit):
		m.state = StateBrowsing
		return m, nil
	case key.Matches(keyMsg, m.keymap.Edit):
		m.form = components.NewTransactionForm(m.detail.Transaction(), m.theme)
		m.form.Resize(m.width, m.height)
		m.state = StateForm
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keymap.Delete):
		m.confirm = components.NewConfirmDelete(m.detail.Transaction(), m.theme)
		m.confirm.Resize(m.width, m.height)
		m.state = StateConfirmDelete
		return m, nil
	case key.Matches(keyMsg, m.keymap.Invoice):
		// Printed above the program, so it lands in the scrollback once
		// the alt screen closes.
		invoice := m.detail.Invoice()
		next, cmd := m.setStatus("Invoice written to terminal", false)
		return next, tea.Batch(tea.Println(invoice), cmd)
	}
	return m, nil
}

func (m Model) setStatus(text string, isError bool) (Model, tea.Cmd) {
	m.status = text
	m.statusError = isError
	return m, clearStatusAfter(4 * time.Second)
}

func (m *Model) handleResize() {
	chrome := 12
	if !m.config.ShowStats {
		chrome = 8
	}
	m.table.Resize(m.width, max(6, m.height-chrome))
	m.statsPanel.Resize(m.width)
	m.filterPanel.Resize(m.width, m.height)
	m.sortMenu.Resize(m.width, m.height)
	m.form.Resize(m.width, m.height)
	m.detail.Resize(m.width, m.height)
	m.confirm.Resize(m.width, m.height)
}
