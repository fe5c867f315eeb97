package search

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilter_FreeText(t *testing.T) {
	fields := []string{"name", "email", "phone"}
	filter := Filter(fields, Params{Query: "alice"})

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %#v", filter)
	}
	if len(or) != len(fields) {
		t.Fatalf("len($or) = %d, want %d", len(or), len(fields))
	}
	for i, f := range fields {
		cond, ok := or[i][f].(bson.M)
		if !ok {
			t.Fatalf("clause %d missing field %q: %#v", i, f, or[i])
		}
		re, ok := cond["$regex"].(primitive.Regex)
		if !ok {
			t.Fatalf("clause %d missing $regex: %#v", i, cond)
		}
		if re.Pattern != "alice" {
			t.Errorf("pattern = %q, want %q", re.Pattern, "alice")
		}
		if re.Options != "i" {
			t.Errorf("options = %q, want %q", re.Options, "i")
		}
	}
}

func TestFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := Filter([]string{"name"}, Params{Query: "a.b*(c)+?"})

	or := filter["$or"].([]bson.M)
	re := or[0]["name"].(bson.M)["$regex"].(primitive.Regex)
	want := `a\.b\*\(c\)\+\?`
	if re.Pattern != want {
		t.Errorf("pattern = %q, want %q", re.Pattern, want)
	}
}

func TestFilter_DateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name               string
		params             Params
		wantGte, wantLte   bool
		wantCreatedAtBound bool
	}{
		{name: "both bounds", params: Params{StartDate: start, EndDate: end}, wantGte: true, wantLte: true, wantCreatedAtBound: true},
		{name: "start only", params: Params{StartDate: start}, wantGte: true, wantCreatedAtBound: true},
		{name: "end only", params: Params{EndDate: end}, wantLte: true, wantCreatedAtBound: true},
		{name: "no bounds", params: Params{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := Filter(nil, tt.params)
			rng, ok := filter["createdAt"].(bson.M)
			if ok != tt.wantCreatedAtBound {
				t.Fatalf("createdAt bound present = %v, want %v", ok, tt.wantCreatedAtBound)
			}
			if !ok {
				if len(filter) != 0 {
					t.Errorf("expected match-all filter, got %#v", filter)
				}
				return
			}
			if _, ok := rng["$gte"]; ok != tt.wantGte {
				t.Errorf("$gte present = %v, want %v", ok, tt.wantGte)
			}
			if _, ok := rng["$lte"]; ok != tt.wantLte {
				t.Errorf("$lte present = %v, want %v", ok, tt.wantLte)
			}
		})
	}
}

func TestFilter_TextAndDateCombine(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	filter := Filter([]string{"courseName"}, Params{Query: "chess", StartDate: start})

	if _, ok := filter["$or"]; !ok {
		t.Error("missing $or clause")
	}
	if _, ok := filter["createdAt"]; !ok {
		t.Error("missing createdAt clause")
	}
}

func TestParams_Normalized(t *testing.T) {
	tests := []struct {
		name                string
		in                  Params
		wantPage, wantLimit int64
	}{
		{name: "defaults", in: Params{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "negative page", in: Params{Page: -3, Limit: 10}, wantPage: 1, wantLimit: 10},
		{name: "zero limit", in: Params{Page: 2}, wantPage: 2, wantLimit: DefaultLimit},
		{name: "passthrough", in: Params{Page: 4, Limit: 25}, wantPage: 4, wantLimit: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("Normalized() = page %d limit %d, want page %d limit %d",
					got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

// Pages must partition the result set: consecutive skips tile the whole range
// with no overlap and no gap.
func TestParams_SkipPartitionsPages(t *testing.T) {
	const limit = 7
	var prevEnd int64
	for page := int64(1); page <= 5; page++ {
		p := Params{Page: page, Limit: limit}.Normalized()
		if p.Skip() != prevEnd {
			t.Fatalf("page %d: skip = %d, want %d", page, p.Skip(), prevEnd)
		}
		prevEnd = p.Skip() + limit
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/contact?name=alice&page=3&limit=5", nil)
	p := FromRequest(r, "name")

	if p.Query != "alice" {
		t.Errorf("Query = %q, want %q", p.Query, "alice")
	}
	if p.Page != 3 || p.Limit != 5 {
		t.Errorf("page/limit = %d/%d, want 3/5", p.Page, p.Limit)
	}
}

func TestFromRequest_BadValuesFallBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/enrollment?q=x&page=abc&limit=-2&startDate=junk", nil)
	p := FromRequest(r, "q")

	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if !p.StartDate.IsZero() {
		t.Errorf("StartDate = %v, want zero", p.StartDate)
	}
}

func TestFromRequest_DateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/enrollment?startDate=2025-06-01T00:00:00Z&endDate=2025-06-30", nil)
	p := FromRequest(r, "q")

	wantStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !p.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", p.StartDate, wantStart)
	}
	// bare end date widens to end of day so the range stays inclusive
	wantEnd := time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC)
	if !p.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", p.EndDate, wantEnd)
	}
}
