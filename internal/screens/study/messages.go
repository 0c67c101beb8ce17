package study

import (
	"github.com/aeroSapphire/greprep/internal/evaluate"
	"github.com/aeroSapphire/greprep/internal/profile"
)

// initDoneMsg carries the loaded profile and the session's card queue.
type initDoneMsg struct {
	Profile *profile.Profile
	Queue   []string
	Err     error
}

// mnemonicMsg carries a generated memory aid for the current card.
type mnemonicMsg struct {
	CardID string
	Result *evaluate.MnemonicResult
}

// sentenceEvalMsg carries the judgment of a learner-written sentence.
type sentenceEvalMsg struct {
	CardID string
	Result *evaluate.SentenceResult
}

// savedMsg is sent when end-of-session persistence has finished.
type savedMsg struct {
	Err error
}
