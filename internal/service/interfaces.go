// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"net/url"

	"salesdesk/internal/model"
	"salesdesk/internal/query"
)

// Gateway is the contract for the remote transactions resource. The
// production implementation is the HTTP client in internal/api; internal/demo
// provides an in-memory one for offline use, and tests substitute fakes.
type Gateway interface {
	// List fetches one page; the server performs filtering, sorting, paging.
	List(ctx context.Context, params url.Values) (query.Page, error)

	// Stats returns the global aggregates, independent of any filter.
	Stats(ctx context.Context) (model.GlobalStats, error)

	// Options returns the server's filter vocabulary.
	Options(ctx context.Context) (model.FilterOptions, error)

	// Record mutations. Every failure propagates to the caller.
	Create(ctx context.Context, txn model.Transaction) (model.Transaction, error)
	Update(ctx context.Context, id string, txn model.Transaction) (model.Transaction, error)
	Delete(ctx context.Context, id string) error
}
