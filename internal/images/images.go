// Package images looks up stock photos for slide search queries.
package images

import "context"

// Orientation values accepted by the photo search.
const (
	Landscape = "landscape"
	Portrait  = "portrait"
	Square    = "square"
)

// Image is a single stock photo reference as it appears on a slide.
type Image struct {
	URL string `json:"url"`
}

// Searcher finds photos matching a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, perPage int, orientation string) ([]Image, error)
}
