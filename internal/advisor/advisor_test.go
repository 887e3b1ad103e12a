package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/octobees/product-advisor/internal/dto"
	"github.com/octobees/product-advisor/internal/listing"
)

type fetcherStub struct {
	listings []listing.Listing
	err      error
	calls    int
}

func (f *fetcherStub) Search(ctx context.Context, query string, minPrice, maxPrice float64) ([]listing.Listing, error) {
	f.calls++
	return f.listings, f.err
}

type recommenderStub struct {
	text      string
	err       error
	calls     int
	shortlist string
	query     string
	features  string
}

func (r *recommenderStub) Recommend(ctx context.Context, shortlist, query, features string) (string, error) {
	r.calls++
	r.shortlist = shortlist
	r.query = query
	r.features = features
	return r.text, r.err
}

func titled(names ...string) []listing.Listing {
	listings := make([]listing.Listing, 0, len(names))
	for i := range names {
		listings = append(listings, listing.Listing{Title: &names[i]})
	}
	return listings
}

func TestSearchPipeline(t *testing.T) {
	fetcher := &fetcherStub{listings: titled("Alpha", "Beta", "Gamma")}
	recommender := &recommenderStub{text: "Alpha is best"}
	a := New(fetcher, recommender)

	req := dto.SearchRequest{Product: "laptop", SpecificFeatures: "8GB RAM, SSD", MinPrice: 30000, MaxPrice: 80000}
	got, err := a.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alpha is best" {
		t.Fatalf("expected recommendation returned verbatim, got %q", got)
	}
	if recommender.calls != 1 {
		t.Fatalf("expected exactly one recommend call, got %d", recommender.calls)
	}
	if recommender.query != "laptop" || recommender.features != "8GB RAM, SSD" {
		t.Fatalf("unexpected recommend arguments: %q %q", recommender.query, recommender.features)
	}
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(recommender.shortlist, "Product: "+title+"\n") {
			t.Fatalf("expected shortlist to contain %s, got %q", title, recommender.shortlist)
		}
	}
	// three five-line blocks joined with a newline separator
	if got, want := strings.Count(recommender.shortlist, "Product: "), 3; got != want {
		t.Fatalf("expected %d summaries, got %d", want, got)
	}
}

func TestSearchTruncatesToTen(t *testing.T) {
	names := make([]string, 14)
	for i := range names {
		names[i] = fmt.Sprintf("Item-%02d", i)
	}
	fetcher := &fetcherStub{listings: titled(names...)}
	recommender := &recommenderStub{text: "ok"}
	a := New(fetcher, recommender)

	if _, err := a.Search(context.Background(), dto.SearchRequest{Product: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		if !strings.Contains(recommender.shortlist, fmt.Sprintf("Item-%02d", i)) {
			t.Fatalf("expected first ten listings in order, missing Item-%02d", i)
		}
	}
	for i := 10; i < 14; i++ {
		if strings.Contains(recommender.shortlist, fmt.Sprintf("Item-%02d", i)) {
			t.Fatalf("expected Item-%02d to be dropped", i)
		}
	}
	first := strings.Index(recommender.shortlist, "Item-00")
	last := strings.Index(recommender.shortlist, "Item-09")
	if first < 0 || last < 0 || first > last {
		t.Fatalf("expected original ordering preserved")
	}
}

func TestSearchEmptyResultStillRecommends(t *testing.T) {
	fetcher := &fetcherStub{listings: []listing.Listing{}}
	recommender := &recommenderStub{text: "nothing matched"}
	a := New(fetcher, recommender)

	got, err := a.Search(context.Background(), dto.SearchRequest{Product: "unobtainium"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "nothing matched" {
		t.Fatalf("unexpected result: %q", got)
	}
	if recommender.calls != 1 {
		t.Fatalf("expected requester invoked once for empty shortlist, got %d", recommender.calls)
	}
	if recommender.shortlist != "" {
		t.Fatalf("expected empty shortlist section, got %q", recommender.shortlist)
	}
}

func TestSearchFetchFailureSkipsRecommender(t *testing.T) {
	fetcher := &fetcherStub{err: errors.New("search API status 500: boom")}
	recommender := &recommenderStub{}
	a := New(fetcher, recommender)

	_, err := a.Search(context.Background(), dto.SearchRequest{Product: "laptop"})
	if err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
	if recommender.calls != 0 {
		t.Fatalf("expected requester never invoked, got %d calls", recommender.calls)
	}
}

func TestSearchRecommendFailurePropagates(t *testing.T) {
	fetcher := &fetcherStub{listings: titled("Alpha")}
	wantErr := errors.New("completion API status 503: busy")
	recommender := &recommenderStub{err: wantErr}
	a := New(fetcher, recommender)

	_, err := a.Search(context.Background(), dto.SearchRequest{Product: "laptop"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected recommend error to propagate, got %v", err)
	}
}

func TestSearchIdempotent(t *testing.T) {
	fetcher := &fetcherStub{listings: titled("Alpha", "Beta")}
	recommender := &recommenderStub{text: "pick Alpha"}
	a := New(fetcher, recommender)

	req := dto.SearchRequest{Product: "laptop", SpecificFeatures: "SSD", MinPrice: 1, MaxPrice: 100}
	first, err := a.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstShortlist := recommender.shortlist

	second, err := a.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output, got %q vs %q", first, second)
	}
	if recommender.shortlist != firstShortlist {
		t.Fatalf("expected identical shortlist across calls")
	}
}
