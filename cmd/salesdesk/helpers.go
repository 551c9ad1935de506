package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salesdesk/internal/api"
	"salesdesk/internal/common"
	"salesdesk/internal/demo"
	"salesdesk/internal/model"
	"salesdesk/internal/query"
	"salesdesk/internal/service"
)

// newGateway builds the configured transaction source: the demo generator
// when demo mode is on, otherwise the HTTP API client.
func newGateway() (service.Gateway, error) {
	if viper.GetBool("demo.enabled") {
		return demo.NewGateway(viper.GetInt("demo.count"), viper.GetUint64("demo.seed")), nil
	}
	client, err := api.NewClient(viper.GetString("api.url"), viper.GetDuration("api.timeout"))
	if err != nil {
		return nil, common.NewUserError("configure the API with --api-url or SALESDESK_API_URL, or pass --demo", err)
	}
	return client, nil
}

// addFilterFlags registers the shared listing flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "search customer name or phone number")
	cmd.Flags().StringSlice("region", nil, "filter by region (repeatable)")
	cmd.Flags().StringSlice("gender", nil, "filter by gender (repeatable)")
	cmd.Flags().StringSlice("category", nil, "filter by product category (repeatable)")
	cmd.Flags().StringSlice("tags", nil, "filter by tag (repeatable)")
	cmd.Flags().StringSlice("payment-method", nil, "filter by payment method (repeatable)")
	cmd.Flags().Int("min-age", query.DefaultMinAge, "minimum customer age")
	cmd.Flags().Int("max-age", query.DefaultMaxAge, "maximum customer age")
	cmd.Flags().String("start-date", "", "earliest date (yyyy-mm-dd)")
	cmd.Flags().String("end-date", "", "latest date (yyyy-mm-dd)")
	cmd.Flags().String("sort", string(query.SortNameAsc), "sort order (name-asc, name-desc, date-desc, date-asc, amount-desc, amount-asc)")
}

// filtersFromFlags assembles the filter selection from the shared flags.
func filtersFromFlags(cmd *cobra.Command) (query.Filters, error) {
	filters := query.NewFilters()

	for dim, flag := range map[query.Dimension]string{
		query.DimRegion:   "region",
		query.DimGender:   "gender",
		query.DimCategory: "category",
		query.DimTags:     "tags",
		query.DimPayment:  "payment-method",
	} {
		values, err := cmd.Flags().GetStringSlice(flag)
		if err != nil {
			return filters, err
		}
		filters.Set(dim, values)
	}

	filters.MinAge, _ = cmd.Flags().GetInt("min-age")
	filters.MaxAge, _ = cmd.Flags().GetInt("max-age")
	if filters.MinAge > filters.MaxAge {
		return filters, fmt.Errorf("--min-age %d exceeds --max-age %d", filters.MinAge, filters.MaxAge)
	}

	for _, bound := range []struct {
		dst  *model.Date
		flag string
	}{
		{&filters.StartDate, "start-date"},
		{&filters.EndDate, "end-date"},
	} {
		raw, _ := cmd.Flags().GetString(bound.flag)
		date, err := model.ParseDate(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid --%s: %w", bound.flag, err)
		}
		*bound.dst = date
	}

	sort, _ := cmd.Flags().GetString("sort")
	key, err := query.ParseSortKey(sort)
	if err != nil {
		return filters, fmt.Errorf("invalid --sort: %w", err)
	}
	filters.Sort = key

	return filters, nil
}

// listParams flattens filters plus paging into wire query fields.
func listParams(cmd *cobra.Command, filters query.Filters, page, perPage int) url.Values {
	params := filters.Params()
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		params.Set("search", search)
	}
	return params
}
