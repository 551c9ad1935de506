// Package demo provides an in-memory gateway with generated data so the
// dashboard can run without a server.
package demo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"salesdesk/internal/common"
	"salesdesk/internal/model"
	"salesdesk/internal/query"
)

// Gateway serves generated transactions from memory, applying the same
// filtering, sorting, and paging contract the real API implements
// server-side.
type Gateway struct {
	mu     sync.Mutex
	faker  *gofakeit.Faker
	txns   []model.Transaction
	nextID int
}

// NewGateway generates count records from the given seed. The same seed
// always produces the same data set.
func NewGateway(count int, seed uint64) *Gateway {
	g := &Gateway{faker: gofakeit.New(seed)}
	for i := 0; i < count; i++ {
		g.txns = append(g.txns, g.generate(i))
	}
	g.nextID = count
	return g
}

func (g *Gateway) generate(i int) model.Transaction {
	f := g.faker
	quantity := f.Number(1, 8)
	amount := model.Amount(f.Price(100, 250000))
	date := f.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
	return model.Transaction{
		ID:            fmt.Sprintf("demo%020d", i),
		TransactionID: fmt.Sprintf("TXN-%05d", i+1),
		CustomerID:    fmt.Sprintf("CUST-%04d", f.Number(0, 9999)),
		CustomerName:  f.Name(),
		PhoneNumber:   model.JoinPhone("+91", f.Numerify("9#########")),
		ProductID:     fmt.Sprintf("PROD-%04d", f.Number(0, 9999)),
		ProductName:   f.ProductName(),
		EmployeeName:  f.Name(),
		Quantity:      quantity,
		TotalAmount:   amount,
		FinalAmount:   amount,
		Discount:      amount * model.Amount(f.Float64Range(0, 0.2)),
		Date:          model.NewDate(date),
		Currency:      model.DefaultCurrency,
		OrderStatus:   f.RandomString([]string{model.StatusPending, model.StatusCompleted}),
		Region:        f.RandomString(query.DimensionOptions[query.DimRegion]),
		Gender:        f.RandomString(query.DimensionOptions[query.DimGender]),
		Age:           f.Number(18, 80),
		Category:      f.RandomString(query.DimensionOptions[query.DimCategory]),
		PaymentMethod: f.RandomString(query.DimensionOptions[query.DimPayment]),
		Tags:          []string{f.RandomString(query.DimensionOptions[query.DimTags])},
	}
}

// List applies the filter parameters, sorts, and returns the requested page.
func (g *Gateway) List(_ context.Context, params url.Values) (query.Page, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	matched := make([]model.Transaction, 0, len(g.txns))
	for _, t := range g.txns {
		if matches(t, params) {
			matched = append(matched, t)
		}
	}
	applySort(matched, query.SortKey(params.Get("sort")))

	perPage, _ := strconv.Atoi(params.Get("perPage"))
	if perPage <= 0 {
		perPage = query.DefaultPerPage
	}
	page, _ := strconv.Atoi(params.Get("page"))
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := min(start+perPage, total)

	return query.Page{
		Transactions: matched[start:end],
		Total:        total,
		TotalPages:   totalPages,
	}, nil
}

func matches(t model.Transaction, params url.Values) bool {
	if search := strings.ToLower(params.Get("search")); search != "" {
		if !strings.Contains(strings.ToLower(t.CustomerName), search) &&
			!strings.Contains(t.PhoneNumber, search) {
			return false
		}
	}
	if vals := params["region"]; len(vals) > 0 && !contains(vals, t.Region) {
		return false
	}
	if vals := params["gender"]; len(vals) > 0 && !contains(vals, t.Gender) {
		return false
	}
	if vals := params["category"]; len(vals) > 0 && !contains(vals, t.Category) {
		return false
	}
	if vals := params["paymentMethod"]; len(vals) > 0 && !contains(vals, t.PaymentMethod) {
		return false
	}
	if vals := params["tags"]; len(vals) > 0 {
		found := false
		for _, tag := range t.Tags {
			if contains(vals, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if v := params.Get("minAge"); v != "" {
		if minAge, err := strconv.Atoi(v); err == nil && t.Age < minAge {
			return false
		}
	}
	if v := params.Get("maxAge"); v != "" {
		if maxAge, err := strconv.Atoi(v); err == nil && t.Age > maxAge {
			return false
		}
	}
	if v := params.Get("startDate"); v != "" && t.Date.ISO() < v {
		return false
	}
	if v := params.Get("endDate"); v != "" && t.Date.ISO() > v {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

func applySort(txns []model.Transaction, key query.SortKey) {
	sort.SliceStable(txns, func(i, j int) bool {
		a, b := txns[i], txns[j]
		switch key {
		case query.SortNameDesc:
			return a.CustomerName > b.CustomerName
		case query.SortDateAsc:
			return a.Date.Before(b.Date.Time)
		case query.SortDateDesc:
			return a.Date.After(b.Date.Time)
		case query.SortAmountAsc:
			return a.TotalAmount < b.TotalAmount
		case query.SortAmountDesc:
			return a.TotalAmount > b.TotalAmount
		default: // name-asc
			return a.CustomerName < b.CustomerName
		}
	})
}

// Stats aggregates the whole in-memory data set.
func (g *Gateway) Stats(_ context.Context) (model.GlobalStats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var stats model.GlobalStats
	for _, t := range g.txns {
		stats.TotalUnits += t.Quantity
		stats.TotalAmount += t.TotalAmount
		stats.TotalDiscount += t.Discount
	}
	return stats, nil
}

// Options returns the same vocabulary the filter bar hardcodes.
func (g *Gateway) Options(_ context.Context) (model.FilterOptions, error) {
	return model.FilterOptions{
		Regions:        query.DimensionOptions[query.DimRegion],
		Genders:        query.DimensionOptions[query.DimGender],
		Categories:     query.DimensionOptions[query.DimCategory],
		Tags:           query.DimensionOptions[query.DimTags],
		PaymentMethods: query.DimensionOptions[query.DimPayment],
	}, nil
}

// Create stores a new record and returns it with a generated ID.
func (g *Gateway) Create(_ context.Context, txn model.Transaction) (model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	txn.ID = fmt.Sprintf("demo%020d", g.nextID)
	txn.TransactionID = fmt.Sprintf("TXN-%05d", g.nextID+1)
	g.nextID++
	g.txns = append(g.txns, txn)
	return txn, nil
}

// Update replaces the stored record with the given ID.
func (g *Gateway) Update(_ context.Context, id string, txn model.Transaction) (model.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, existing := range g.txns {
		if existing.ID == id {
			txn.ID = id
			txn.TransactionID = existing.TransactionID
			g.txns[i] = txn
			return txn, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
}

// Delete removes the stored record with the given ID.
func (g *Gateway) Delete(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, existing := range g.txns {
		if existing.ID == id {
			g.txns = append(g.txns[:i], g.txns[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
}
