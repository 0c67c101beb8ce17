// Package vocab holds the seeded flashcard deck: GRE words with
// definitions, examples, and etymology where it genuinely helps.
package vocab

// Card is a single vocabulary flashcard.
type Card struct {
	ID           string
	Word         string
	PartOfSpeech string
	Definition   string
	Example      string
	// Etymology is filled only when the roots are a useful memory hook.
	Etymology string
}
