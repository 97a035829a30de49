package models

// Page is the paginated envelope list endpoints return. Next and Previous
// are absolute URLs, null on the last and first page respectively.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
