package mistakes

import (
	"context"
	"time"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/store"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// Service coordinates mistake classification: cheap rule checks run first,
// and only inconclusive cases go to the LLM. It also keeps the running
// mistake history used for the daily nudge.
type Service struct {
	rules      []RuleClassifier
	classifier *LLMClassifier
	history    []Event
}

// NewService creates a classification service, restoring mistake history
// from the snapshot when present. If provider is nil, only rule-based
// classification is available and inconclusive inputs come back as NONE.
func NewService(provider llm.Provider, snap *store.SnapshotData) *Service {
	s := &Service{rules: DefaultRules()}
	if provider != nil {
		s.classifier = NewLLMClassifier(provider, DefaultClassifierConfig())
	}
	if snap != nil {
		for _, ev := range snap.Mistakes {
			at, err := time.Parse(time.RFC3339, ev.At)
			if err != nil {
				continue
			}
			s.history = append(s.history, Event{Label: Label(ev.Label), At: at})
		}
	}
	return s
}

// Classify classifies a wrong answer and records the outcome in the
// history. Rule checks are free; the LLM phase is skipped when no provider
// is configured.
func (s *Service) Classify(ctx context.Context, input *ClassifyInput) *Result {
	result := s.classifyOnce(ctx, input)
	if result.Label != LabelNone {
		s.history = append(s.history, Event{Label: result.Label, At: nowFunc()})
	}
	return result
}

func (s *Service) classifyOnce(ctx context.Context, input *ClassifyInput) *Result {
	if label, conf, name := RunRules(s.rules, input); label != "" {
		return &Result{
			Label:       label,
			Explanation: NudgeMessages[label],
			Confidence:  conf,
			Source:      "rule:" + name,
		}
	}

	if s.classifier == nil {
		return &Result{Label: LabelNone, Source: "none"}
	}

	result, err := s.classifier.Classify(ctx, input)
	if err != nil {
		// Classify always hands back a usable fallback.
		return result
	}
	return result
}

// History returns the recorded mistake events, oldest first.
func (s *Service) History() []Event {
	return s.history
}

// SnapshotData exports the history for persistence.
func (s *Service) SnapshotData() []*store.MistakeEventData {
	if len(s.history) == 0 {
		return nil
	}
	out := make([]*store.MistakeEventData, 0, len(s.history))
	for _, ev := range s.history {
		out = append(out, &store.MistakeEventData{
			Label: string(ev.Label),
			At:    ev.At.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// Nudge returns the coaching line for the current dominant mistake, if any.
func (s *Service) Nudge() string {
	return DailyNudge(s.history, nowFunc())
}
