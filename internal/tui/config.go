package tui

import (
	"salesdesk/internal/service"
	"salesdesk/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Gateway   service.Gateway
	PerPage   int
	Width     int
	Height    int
	ShowStats bool
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		PerPage:   10,
		Width:     80,
		Height:    24,
		ShowStats: true,
		ShowHelp:  true,
	}
}

// WithGateway sets the transaction gateway.
func WithGateway(gw service.Gateway) Option {
	return func(c *Config) {
		c.Gateway = gw
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPerPage sets the page size for listings.
func WithPerPage(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.PerPage = n
		}
	}
}

// WithStats toggles the summary cards above the table.
func WithStats(enabled bool) Option {
	return func(c *Config) {
		c.ShowStats = enabled
	}
}
