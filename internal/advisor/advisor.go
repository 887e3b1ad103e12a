package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/octobees/product-advisor/internal/dto"
	"github.com/octobees/product-advisor/internal/listing"
	"github.com/octobees/product-advisor/internal/recommend"
	"github.com/octobees/product-advisor/internal/search"
)

// maxShortlist bounds how many listings are summarized for the model.
const maxShortlist = 10

// Advisor runs the query → listings → summaries → recommendation pipeline.
// It is stateless: every call is a single sequential pass.
type Advisor struct {
	fetcher     search.Fetcher
	recommender recommend.Recommender
}

// New wires an advisor from its two collaborators.
func New(fetcher search.Fetcher, recommender recommend.Recommender) *Advisor {
	return &Advisor{fetcher: fetcher, recommender: recommender}
}

// Search resolves one recommendation request. A fetch failure aborts the
// request before the completion endpoint is contacted. An empty result set is
// not an error: the model still receives the prompt, with an empty shortlist
// section, and decides what to answer.
func (a *Advisor) Search(ctx context.Context, req dto.SearchRequest) (string, error) {
	listings, err := a.fetcher.Search(ctx, req.Product, req.MinPrice, req.MaxPrice)
	if err != nil {
		return "", fmt.Errorf("product search failed: %w", err)
	}

	if len(listings) > maxShortlist {
		listings = listings[:maxShortlist]
	}

	summaries := make([]string, 0, len(listings))
	for _, l := range listings {
		summaries = append(summaries, listing.Summarize(l))
	}

	text, err := a.recommender.Recommend(ctx, strings.Join(summaries, "\n"), req.Product, req.SpecificFeatures)
	if err != nil {
		return "", err
	}
	return text, nil
}
