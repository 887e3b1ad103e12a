package listing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// placeholder is rendered for any field the search API omitted.
const placeholder = "N/A"

// Listing is one product record returned by the search endpoint. Every field
// is optional; a nil pointer means the API omitted the field or sent a value
// that could not be decoded.
type Listing struct {
	Title       *string
	Category    *string
	Rating      *float64
	RatingCount *int
	Price       *string
	URL         *string
}

// UnmarshalJSON decodes the search API's listing payload. The rating arrives
// as either a JSON number or a numeric string depending on the marketplace,
// so both fields are decoded tolerantly: an unparseable value becomes absent
// rather than failing the whole listing.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       *string         `json:"product_title"`
		Category    *string         `json:"product_category"`
		Rating      json.RawMessage `json:"product_star_rating"`
		RatingCount json.RawMessage `json:"product_num_ratings"`
		Price       *string         `json:"product_price"`
		URL         *string         `json:"product_url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Title = raw.Title
	l.Category = raw.Category
	l.Rating = parseFloat(raw.Rating)
	l.RatingCount = parseInt(raw.RatingCount)
	l.Price = raw.Price
	l.URL = raw.URL
	return nil
}

// Summarize renders a listing as the fixed five-line block embedded in the
// recommendation prompt. It is total: absent fields become placeholders and
// no listing can make it fail. Listing content is embedded as-is.
func Summarize(l Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s\n", orPlaceholder(l.Title))
	fmt.Fprintf(&b, "Category: %s\n", orPlaceholder(l.Category))
	fmt.Fprintf(&b, "Rating: %s stars (%s ratings)\n", formatRating(l.Rating), formatCount(l.RatingCount))
	fmt.Fprintf(&b, "Price: %s\n", orPlaceholder(l.Price))
	fmt.Fprintf(&b, "URL: %s\n", orPlaceholder(l.URL))
	return b.String()
}

func orPlaceholder(s *string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

func formatRating(r *float64) string {
	if r == nil {
		return placeholder
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

func formatCount(n *int) string {
	if n == nil {
		return placeholder
	}
	return strconv.Itoa(*n)
}

func parseFloat(raw json.RawMessage) *float64 {
	s := unquote(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(raw json.RawMessage) *int {
	s := unquote(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// unquote normalizes a raw JSON scalar to its text form. null and non-scalar
// values collapse to the empty string, which callers treat as absent.
func unquote(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return ""
		}
		return strings.TrimSpace(inner)
	}
	return s
}
