package helper

import (
	"sort"
	"strconv"
	"strings"

	"kost_market/constants"
	"kost_market/model"
)

// FilterListings applies every active predicate of cfg as a conjunction and
// orders the survivors per cfg.SortBy. It never mutates rows, performs no
// I/O and is idempotent: re-running the same cfg over its own output yields
// the same sequence. An empty result is a valid outcome.
func FilterListings(rows []model.ListingRow, cfg model.ListingFilter) []model.ListingRow {
	out := make([]model.ListingRow, 0, len(rows))

	query := strings.ToLower(strings.TrimSpace(cfg.SearchQuery))
	occupancy, filterOccupancy := parseOccupancy(cfg.Occupancy)

	for _, row := range rows {
		if query != "" && !matchesQuery(row, query) {
			continue
		}
		if !dimensionDisabled(cfg.City) && row.City != cfg.City {
			continue
		}
		if cfg.PriceMin != nil && row.MonthlyPrice < *cfg.PriceMin {
			continue
		}
		if cfg.PriceMax != nil && row.MonthlyPrice > *cfg.PriceMax {
			continue
		}
		if filterOccupancy && row.MaxOccupancy != occupancy {
			continue
		}
		if !dimensionDisabled(cfg.Gender) && row.Gender != cfg.Gender {
			continue
		}
		if !dimensionDisabled(cfg.Type) && !strings.EqualFold(row.Name, cfg.Type) {
			continue
		}
		out = append(out, row)
	}

	sortListings(out, cfg.SortBy)
	return out
}

// matchesQuery is an OR across the four searchable fields.
func matchesQuery(row model.ListingRow, query string) bool {
	return strings.Contains(strings.ToLower(row.Name), query) ||
		strings.Contains(strings.ToLower(row.PropertyName), query) ||
		strings.Contains(strings.ToLower(row.City), query) ||
		strings.Contains(strings.ToLower(row.Address), query)
}

// dimensionDisabled reports whether a string predicate is inactive: absent
// or the "all" sentinel.
func dimensionDisabled(value string) bool {
	return value == "" || strings.EqualFold(value, constants.FILTER_ALL)
}

// parseOccupancy returns the exact-match value and whether the dimension is
// active. Unparsable input counts as "all" so the engine stays total.
func parseOccupancy(value string) (int, bool) {
	if dimensionDisabled(value) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// sortListings orders in place with a stable sort so equal keys keep their
// relative order. A zero CreatedAt counts as the oldest possible value.
// Unknown sort keys keep the input order.
func sortListings(rows []model.ListingRow, sortBy string) {
	switch sortBy {
	case constants.SORT_NEWEST:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		})
	case constants.SORT_OLDEST:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		})
	case constants.SORT_PRICE_ASC:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].MonthlyPrice < rows[j].MonthlyPrice
		})
	case constants.SORT_PRICE_DESC:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].MonthlyPrice > rows[j].MonthlyPrice
		})
	}
}

// ObservedPriceBounds scans the rows for the full observed monthly-price
// range, the default window when the renter has not picked one.
func ObservedPriceBounds(rows []model.ListingRow) model.PriceBounds {
	if len(rows) == 0 {
		return model.PriceBounds{}
	}
	bounds := model.PriceBounds{Min: rows[0].MonthlyPrice, Max: rows[0].MonthlyPrice}
	for _, row := range rows[1:] {
		if row.MonthlyPrice < bounds.Min {
			bounds.Min = row.MonthlyPrice
		}
		if row.MonthlyPrice > bounds.Max {
			bounds.Max = row.MonthlyPrice
		}
	}
	return bounds
}
