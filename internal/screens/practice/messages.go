package practice

import (
	"github.com/aeroSapphire/greprep/internal/mistakes"
	core "github.com/aeroSapphire/greprep/internal/practice"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/question"
)

// initDoneMsg is sent when the profile has been loaded and the session
// controller opened.
type initDoneMsg struct {
	Profile    *profile.Profile
	Controller *core.Controller
	Err        error
}

// questionReadyMsg is sent when the next question has been selected.
// A nil Question with nil Err means the bank is exhausted.
type questionReadyMsg struct {
	Question *question.Question
	Err      error
}

// classifiedMsg carries the mistake classification for a wrong answer.
type classifiedMsg struct {
	Result *mistakes.Result
}

// sessionEndMsg triggers the end-of-session flow.
type sessionEndMsg struct{}

// savedMsg is sent when the end-of-session persistence has finished.
type savedMsg struct {
	Err error
}
