// README: Address search results and area suggestions.
package location

import "errors"

var (
	ErrNotFound       = errors.New("place not found")
	ErrUnavailable    = errors.New("address lookup unavailable")
	ErrRouteNotCached = errors.New("route not cached")
)

// MinSearchLength is the shortest input sent to autocomplete, in runes.
const MinSearchLength = 2

// MaxSuggestions caps the local area suggestions.
const MaxSuggestions = 5

type Suggestion struct {
	Name       string `json:"name"`
	SearchTerm string `json:"search_term"`
	Priority   bool   `json:"priority"`
}
