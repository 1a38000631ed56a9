package model

// Canon identifies which standard work a scripture belongs to
type Canon string

const (
	CanonOldTestament         Canon = "old_testament"
	CanonNewTestament         Canon = "new_testament"
	CanonBookOfMormon         Canon = "book_of_mormon"
	CanonDoctrineAndCovenants Canon = "doctrine_and_covenants"
)

// Reference locates a scripture passage.
// Verse is a string so ranges like "15-17" are representable.
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   string `json:"verse"`
}

// Scripture is one passage from the static mastery dataset
type Scripture struct {
	Text      string    `json:"text"`
	Reference Reference `json:"reference"`
	Canon     Canon     `json:"canon"`
}
