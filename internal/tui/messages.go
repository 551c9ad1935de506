package tui

import (
	"salesdesk/internal/model"
	"salesdesk/internal/query"
)

// Data loading messages.
type pageLoadedMsg struct {
	err  error
	page query.Page
	seq  uint64
}

type statsLoadedMsg struct {
	err   error
	stats model.GlobalStats
}

// Mutation messages.
type transactionSavedMsg struct {
	err     error
	created bool
}

type transactionDeletedMsg struct {
	err error
	id  string
}

// UI messages.
type statusMsg struct {
	text    string
	isError bool
}

type clearStatusMsg struct{}
