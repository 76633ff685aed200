package helper

import (
	"testing"
	"time"

	"kost_market/constants"
	"kost_market/model"
	"kost_market/utils"
)

func listingRow(name, propertyName, city string, price int64, created time.Time) model.ListingRow {
	return model.ListingRow{
		Name:         name,
		PropertyName: propertyName,
		City:         city,
		Address:      "Jl. " + city + " 1",
		MonthlyPrice: price,
		MaxOccupancy: 1,
		Gender:       constants.GENDER_ANY,
		CreatedAt:    created,
	}
}

func baseTime() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestFilterListings_DefaultConfigKeepsOrder(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Deluxe", "Kost A", "Jakarta", 1500000, baseTime()),
		listingRow("Standard", "Kost B", "Bandung", 500000, baseTime().Add(time.Hour)),
		listingRow("Standard", "Kost C", "Solo", 900000, baseTime().Add(2*time.Hour)),
	}

	got := FilterListings(rows, model.ListingFilter{})
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(got))
	}
	for i := range rows {
		if got[i].PropertyName != rows[i].PropertyName {
			t.Fatalf("row %d reordered: expected %s, got %s", i, rows[i].PropertyName, got[i].PropertyName)
		}
	}
}

func TestFilterListings_AllSentinelDisablesDimension(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Deluxe", "Kost A", "Jakarta", 1500000, baseTime()),
		listingRow("Standard", "Kost B", "Bandung", 500000, baseTime()),
	}

	cfg := model.ListingFilter{City: "all", Gender: "all", Type: "all", Occupancy: "all"}
	got := FilterListings(rows, cfg)
	if len(got) != 2 {
		t.Fatalf("expected all rows with sentinel filters, got %d", len(got))
	}
}

func TestFilterListings_CityAndPriceScenario(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Standard", "Kost A", "Jakarta", 500000, baseTime()),
		listingRow("Deluxe", "Kost B", "Jakarta", 1000000, baseTime()),
		listingRow("Premium", "Kost C", "Jakarta", 1500000, baseTime()),
		listingRow("Standard", "Kost D", "Bandung", 2000000, baseTime()),
	}

	cfg := model.ListingFilter{
		City:     "Jakarta",
		PriceMin: utils.Ptr(int64(0)),
		PriceMax: utils.Ptr(int64(1500000)),
		SortBy:   constants.SORT_PRICE_DESC,
	}

	got := FilterListings(rows, cfg)
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	wantPrices := []int64{1500000, 1000000, 500000}
	for i, price := range wantPrices {
		if got[i].MonthlyPrice != price {
			t.Fatalf("row %d: expected price %d, got %d", i, price, got[i].MonthlyPrice)
		}
		if got[i].City != "Jakarta" {
			t.Fatalf("row %d: expected Jakarta, got %s", i, got[i].City)
		}
	}
}

func TestFilterListings_PriceBoundsInclusive(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Standard", "Kost A", "Solo", 500000, baseTime()),
		listingRow("Deluxe", "Kost B", "Solo", 1500000, baseTime()),
		listingRow("Premium", "Kost C", "Solo", 1500001, baseTime()),
	}

	cfg := model.ListingFilter{PriceMin: utils.Ptr(int64(500000)), PriceMax: utils.Ptr(int64(1500000))}
	got := FilterListings(rows, cfg)
	if len(got) != 2 {
		t.Fatalf("expected rows priced exactly at the bounds to be included, got %d rows", len(got))
	}
	if got[0].MonthlyPrice != 500000 || got[1].MonthlyPrice != 1500000 {
		t.Fatalf("unexpected prices %d, %d", got[0].MonthlyPrice, got[1].MonthlyPrice)
	}
}

func TestFilterListings_MissingPriceNeverMatchesTighterBound(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Standard", "Kost A", "Solo", 0, baseTime()),
	}

	if got := FilterListings(rows, model.ListingFilter{PriceMin: utils.Ptr(int64(1))}); len(got) != 0 {
		t.Fatalf("row without price must not satisfy a positive lower bound, got %d rows", len(got))
	}
	if got := FilterListings(rows, model.ListingFilter{PriceMin: utils.Ptr(int64(0))}); len(got) != 1 {
		t.Fatalf("row without price must satisfy a zero lower bound, got %d rows", len(got))
	}
}

func TestFilterListings_SearchMatchesUnitName(t *testing.T) {
	rows := []model.ListingRow{
		{Name: "Kost Mawar", PropertyName: "Mawar Residence", City: "Solo", Address: "Jl. Slamet Riyadi 12", MonthlyPrice: 750000},
		{Name: "Deluxe", PropertyName: "Graha Melati", City: "Jakarta", Address: "Jl. Sudirman 1", MonthlyPrice: 1200000},
	}

	got := FilterListings(rows, model.ListingFilter{SearchQuery: "kost"})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Name != "Kost Mawar" {
		t.Fatalf("expected unit-name match, got %s", got[0].Name)
	}
}

func TestFilterListings_SearchIsCaseInsensitiveOrAcrossFields(t *testing.T) {
	rows := []model.ListingRow{
		{Name: "Standard", PropertyName: "Griya Asri", City: "Yogyakarta", Address: "Jl. Kaliurang km 5"},
		{Name: "Standard", PropertyName: "Pondok Indah", City: "Jakarta", Address: "Jl. Metro"},
	}

	got := FilterListings(rows, model.ListingFilter{SearchQuery: "YOGYA"})
	if len(got) != 1 || got[0].City != "Yogyakarta" {
		t.Fatalf("expected city-field match, got %d rows", len(got))
	}

	got = FilterListings(rows, model.ListingFilter{SearchQuery: "kaliurang"})
	if len(got) != 1 || got[0].PropertyName != "Griya Asri" {
		t.Fatalf("expected address-field match, got %d rows", len(got))
	}
}

func TestFilterListings_Conjunction(t *testing.T) {
	female := listingRow("Deluxe", "Kost A", "Jakarta", 1000000, baseTime())
	female.Gender = constants.GENDER_FEMALE
	female.MaxOccupancy = 2

	male := listingRow("Deluxe", "Kost B", "Jakarta", 1000000, baseTime())
	male.Gender = constants.GENDER_MALE
	male.MaxOccupancy = 2

	otherCity := female
	otherCity.City = "Bandung"

	rows := []model.ListingRow{female, male, otherCity}

	cfg := model.ListingFilter{
		City:      "Jakarta",
		Gender:    constants.GENDER_FEMALE,
		Occupancy: "2",
		Type:      "deluxe",
	}
	got := FilterListings(rows, cfg)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 row satisfying all predicates, got %d", len(got))
	}
	for _, row := range got {
		if row.City != "Jakarta" || row.Gender != constants.GENDER_FEMALE || row.MaxOccupancy != 2 {
			t.Fatalf("conjunction violated: %+v", row)
		}
	}
}

func TestFilterListings_TypeMatchIsCaseInsensitiveExact(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Deluxe", "Kost A", "Solo", 1000000, baseTime()),
		listingRow("Deluxe Plus", "Kost B", "Solo", 1200000, baseTime()),
	}

	got := FilterListings(rows, model.ListingFilter{Type: "DELUXE"})
	if len(got) != 1 || got[0].Name != "Deluxe" {
		t.Fatalf("expected exact case-folded type match only, got %d rows", len(got))
	}
}

func TestFilterListings_Idempotent(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("Standard", "Kost A", "Jakarta", 900000, baseTime().Add(2*time.Hour)),
		listingRow("Deluxe", "Kost B", "Jakarta", 1400000, baseTime()),
		listingRow("Standard", "Kost C", "Bandung", 700000, baseTime().Add(time.Hour)),
	}

	cfg := model.ListingFilter{City: "Jakarta", SortBy: constants.SORT_NEWEST}
	once := FilterListings(rows, cfg)
	twice := FilterListings(once, cfg)

	if len(once) != len(twice) {
		t.Fatalf("idempotency violated: %d vs %d rows", len(once), len(twice))
	}
	for i := range once {
		if once[i].PropertyName != twice[i].PropertyName {
			t.Fatalf("idempotency violated at row %d: %s vs %s", i, once[i].PropertyName, twice[i].PropertyName)
		}
	}
}

func TestFilterListings_PriceAscReversedEqualsDesc(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("A", "Kost A", "Solo", 300000, baseTime()),
		listingRow("B", "Kost B", "Solo", 100000, baseTime()),
		listingRow("C", "Kost C", "Solo", 200000, baseTime()),
	}

	asc := FilterListings(rows, model.ListingFilter{SortBy: constants.SORT_PRICE_ASC})
	desc := FilterListings(rows, model.ListingFilter{SortBy: constants.SORT_PRICE_DESC})

	for i := range asc {
		if asc[i].MonthlyPrice != desc[len(desc)-1-i].MonthlyPrice {
			t.Fatalf("price-asc reversed != price-desc at index %d", i)
		}
	}
}

func TestFilterListings_StableSortKeepsTieOrder(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("A", "Kost A", "Solo", 500000, baseTime()),
		listingRow("B", "Kost B", "Solo", 500000, baseTime()),
		listingRow("C", "Kost C", "Solo", 500000, baseTime()),
	}

	got := FilterListings(rows, model.ListingFilter{SortBy: constants.SORT_PRICE_ASC})
	want := []string{"Kost A", "Kost B", "Kost C"}
	for i, name := range want {
		if got[i].PropertyName != name {
			t.Fatalf("tie order broken at %d: expected %s, got %s", i, name, got[i].PropertyName)
		}
	}
}

func TestFilterListings_MissingTimestampSortsOldest(t *testing.T) {
	dated := listingRow("A", "Kost A", "Solo", 500000, baseTime())
	undated := listingRow("B", "Kost B", "Solo", 600000, time.Time{})

	got := FilterListings([]model.ListingRow{undated, dated}, model.ListingFilter{SortBy: constants.SORT_NEWEST})
	if got[0].PropertyName != "Kost A" || got[1].PropertyName != "Kost B" {
		t.Fatalf("row without timestamp must sort last under newest, got %s first", got[0].PropertyName)
	}

	got = FilterListings([]model.ListingRow{dated, undated}, model.ListingFilter{SortBy: constants.SORT_OLDEST})
	if got[0].PropertyName != "Kost B" {
		t.Fatalf("row without timestamp must sort first under oldest, got %s first", got[0].PropertyName)
	}
}

func TestFilterListings_EmptyInput(t *testing.T) {
	cfg := model.ListingFilter{City: "Jakarta", SortBy: constants.SORT_PRICE_DESC, SearchQuery: "kost"}
	got := FilterListings(nil, cfg)
	if len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %d rows", len(got))
	}
}

func TestFilterListings_DoesNotMutateInput(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("A", "Kost A", "Solo", 900000, baseTime()),
		listingRow("B", "Kost B", "Solo", 100000, baseTime()),
	}

	FilterListings(rows, model.ListingFilter{SortBy: constants.SORT_PRICE_ASC})
	if rows[0].PropertyName != "Kost A" || rows[1].PropertyName != "Kost B" {
		t.Fatalf("input slice mutated: %s, %s", rows[0].PropertyName, rows[1].PropertyName)
	}
}

func TestFilterListings_UnparsableOccupancyCountsAsAll(t *testing.T) {
	rows := []model.ListingRow{
		listingRow("A", "Kost A", "Solo", 900000, baseTime()),
	}
	got := FilterListings(rows, model.ListingFilter{Occupancy: "many"})
	if len(got) != 1 {
		t.Fatalf("unparsable occupancy must disable the dimension, got %d rows", len(got))
	}
}

func TestObservedPriceBounds(t *testing.T) {
	if got := ObservedPriceBounds(nil); got.Min != 0 || got.Max != 0 {
		t.Fatalf("expected zero bounds for empty input, got %+v", got)
	}

	rows := []model.ListingRow{
		listingRow("A", "Kost A", "Solo", 900000, baseTime()),
		listingRow("B", "Kost B", "Solo", 100000, baseTime()),
		listingRow("C", "Kost C", "Solo", 1500000, baseTime()),
	}
	got := ObservedPriceBounds(rows)
	if got.Min != 100000 || got.Max != 1500000 {
		t.Fatalf("expected bounds [100000,1500000], got %+v", got)
	}
}
