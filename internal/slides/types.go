package slides

import "github.com/abhisek/lecturely/internal/images"

// Slide is one presentation slide. Images is filled in after the outline is
// generated and is always present in JSON, empty when no photo was found.
type Slide struct {
	SlideNumber int            `json:"slide_number"`
	Title       string         `json:"title"`
	Bullets     []string       `json:"bullets"`
	SearchQuery string         `json:"search_query"`
	Images      []images.Image `json:"images"`
}

// Deck is the full slide answer for a lecture.
type Deck struct {
	Slides []Slide `json:"slides"`
}

// DeckInput is the lecture to turn into slides. CourseTopic is optional.
type DeckInput struct {
	LectureTitle string
	LectureText  string
	CourseTopic  string
}
