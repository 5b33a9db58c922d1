package response

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Page is a keyset-paginated list. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	if items == nil {
		items = []T{}
	}
	p := Page[T]{Items: items}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}

// mapAll copies every source row into a fresh D with copier.
func mapAll[S, D any](src []S, fill func(*D, S)) ([]D, error) {
	out := make([]D, len(src))
	for i, s := range src {
		if err := copier.Copy(&out[i], s); err != nil {
			return nil, err
		}
		if fill != nil {
			fill(&out[i], s)
		}
	}
	return out, nil
}
