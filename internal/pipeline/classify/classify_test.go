package classify

import (
	"strings"
	"testing"

	"github.com/nurpe/contract-intel/internal/model"
)

func TestClassifyNDA(t *testing.T) {
	text := "MUTUAL NON-DISCLOSURE AGREEMENT\nDisclosing Party: Acme Corp\nReceiving Party: Beta LLC\nThe Receiving Party shall protect all Confidential Information."
	res := Classify(text, DefaultConfig())
	if res.Type != model.TypeNDA {
		t.Errorf("Type = %s, want nda (scores %v)", res.Type, res.Scores)
	}
}

func TestClassifyEmployment(t *testing.T) {
	text := "EMPLOYMENT AGREEMENT\nEmployer: Acme Corp\nEmployee: Jane Roe\nThe annual salary shall be paid semi-monthly. Employment is at-will."
	res := Classify(text, DefaultConfig())
	if res.Type != model.TypeEmployment {
		t.Errorf("Type = %s, want employment (scores %v)", res.Type, res.Scores)
	}
}

func TestClassifyService(t *testing.T) {
	text := "MASTER SERVICES AGREEMENT\nService Provider: Gamma Inc\nThe Scope of Services and deliverables are set out in the Statement of Work."
	res := Classify(text, DefaultConfig())
	if res.Type != model.TypeService {
		t.Errorf("Type = %s, want service (scores %v)", res.Type, res.Scores)
	}
}

func TestClassifyBelowThresholdIsUnknown(t *testing.T) {
	res := Classify("This short letter mentions nothing relevant.", DefaultConfig())
	if res.Type != model.TypeUnknown {
		t.Errorf("Type = %s, want unknown", res.Type)
	}
}

func TestClassifyRepetitionDoesNotInflate(t *testing.T) {
	cfg := DefaultConfig()
	once := Classify("confidential information", cfg)
	many := Classify(strings.Repeat("confidential information ", 50), cfg)
	if once.Scores[model.TypeNDA] != many.Scores[model.TypeNDA] {
		t.Errorf("repeated marker changed score: %d vs %d",
			once.Scores[model.TypeNDA], many.Scores[model.TypeNDA])
	}
}

func TestClassifyTieBreakPriority(t *testing.T) {
	cfg := Config{
		Markers: map[model.ContractType][]Marker{
			model.TypeNDA:     {{Phrase: "alpha", Weight: 5}},
			model.TypeService: {{Phrase: "beta", Weight: 5}},
		},
		MinScore: 3,
		Priority: []model.ContractType{model.TypeNDA, model.TypeEmployment, model.TypeService},
	}
	res := Classify("alpha beta", cfg)
	if res.Type != model.TypeNDA {
		t.Errorf("tie should resolve to nda, got %s", res.Type)
	}
}

// Adding more markers of a type must never lower that type's score.
func TestClassifyMonotonicity(t *testing.T) {
	cfg := DefaultConfig()
	base := "some agreement text with a service provider"
	extended := base + " and a statement of work with deliverables"

	before := Classify(base, cfg).Scores[model.TypeService]
	after := Classify(extended, cfg).Scores[model.TypeService]
	if after < before {
		t.Errorf("score decreased after adding markers: %d -> %d", before, after)
	}
}
