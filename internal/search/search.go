package search

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultLimit = 20

// Params carries the free-text query, optional date range and pagination for
// an admin listing. Zero time values mean the bound is open.
type Params struct {
	Query     string
	StartDate time.Time
	EndDate   time.Time
	Page      int64
	Limit     int64
}

// FromRequest parses listing parameters from the URL. queryParam names the
// free-text parameter ("name" for contacts, "q" for enrollments).
func FromRequest(r *http.Request, queryParam string) Params {
	q := r.URL.Query()
	p := Params{
		Query: q.Get(queryParam),
		Page:  parseInt(q.Get("page"), 1),
		Limit: parseInt(q.Get("limit"), DefaultLimit),
	}
	if start, err := ParseDate(q.Get("startDate"), false); err == nil {
		p.StartDate = start
	}
	if end, err := ParseDate(q.Get("endDate"), true); err == nil {
		p.EndDate = end
	}
	return p.Normalized()
}

// ParseDate accepts RFC 3339 timestamps and bare dates. A bare end date is
// widened to the end of that day so the range stays inclusive.
func ParseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// Normalized clamps page and limit to sane values.
func (p Params) Normalized() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Skip is the offset of the first item on the requested page.
func (p Params) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Filter builds the query predicate: a case-insensitive substring match ORed
// across fields, ANDed with the creation-date range. User input is quoted so
// regex metacharacters match literally.
func Filter(fields []string, p Params) bson.M {
	filter := bson.M{}

	if p.Query != "" {
		pattern := regexp.QuoteMeta(p.Query)
		or := make([]bson.M, 0, len(fields))
		for _, f := range fields {
			or = append(or, bson.M{f: bson.M{"$regex": primitive.Regex{Pattern: pattern, Options: "i"}}})
		}
		filter["$or"] = or
	}

	if !p.StartDate.IsZero() || !p.EndDate.IsZero() {
		rng := bson.M{}
		if !p.StartDate.IsZero() {
			rng["$gte"] = p.StartDate
		}
		if !p.EndDate.IsZero() {
			rng["$lte"] = p.EndDate
		}
		filter["createdAt"] = rng
	}

	return filter
}

// Run executes the filter with creation-time-descending ordering and page
// slicing, and counts all matches ignoring the slice. A page past the end
// yields an exhausted cursor and the true total, not an error.
func Run(ctx context.Context, coll *mongo.Collection, filter bson.M, p Params) (*mongo.Cursor, int64, error) {
	p = p.Normalized()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		cursor.Close(ctx)
		return nil, 0, err
	}

	return cursor, total, nil
}

// RunAll fetches the entire matching set in the same order, for CSV export.
func RunAll(ctx context.Context, coll *mongo.Collection, filter bson.M) (*mongo.Cursor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return coll.Find(ctx, filter, opts)
}

func parseInt(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
