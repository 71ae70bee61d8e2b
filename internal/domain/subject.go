package domain

import "fmt"

// Color is the display color tag attached to subjects and decks.
type Color string

const (
	ColorPurple Color = "purple"
	ColorTeal   Color = "teal"
	ColorCoral  Color = "coral"
)

// ValidColors is the canonical set of accepted color tags.
var ValidColors = map[Color]bool{
	ColorPurple: true,
	ColorTeal:   true,
	ColorCoral:  true,
}

// Subject is a study subject with its ordered chapter names.
type Subject struct {
	ID       string
	Name     string
	Color    Color
	Chapters []string
}

// Chapter is a chapter name with its 1-based position inside a subject.
type Chapter struct {
	Name    string
	Ordinal int
}

// Label returns the zero-padded two-digit ordinal ("01", "02", ...).
func (c Chapter) Label() string {
	return fmt.Sprintf("%02d", c.Ordinal)
}

// ChapterList returns the subject's chapters in original order, 1-indexed.
func (s *Subject) ChapterList() []Chapter {
	out := make([]Chapter, len(s.Chapters))
	for i, name := range s.Chapters {
		out[i] = Chapter{Name: name, Ordinal: i + 1}
	}
	return out
}

// DefaultSubtopics are the generic subtopic labels offered for every chapter.
var DefaultSubtopics = []string{
	"Key Concepts",
	"Derivations",
	"Formulas",
	"Problem Solving",
	"Past Year Questions",
	"Critical Models",
}
