// Package classify scores normalized contract text against per-type
// marker tables and picks the contract type driving extraction.
package classify

import (
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

type Marker struct {
	Phrase string
	Weight int
}

// Config is immutable marker configuration, loaded once per process.
type Config struct {
	Markers map[model.ContractType][]Marker
	// MinScore is the absolute threshold below which the best match is
	// still reported as unknown.
	MinScore int
	// Priority breaks exact ties between types. Documented order:
	// NDA before Employment before Service.
	Priority []model.ContractType
}

func DefaultConfig() Config {
	return Config{
		Markers: map[model.ContractType][]Marker{
			model.TypeNDA: {
				{Phrase: "non-disclosure", Weight: 3},
				{Phrase: "disclosing party", Weight: 3},
				{Phrase: "receiving party", Weight: 3},
				{Phrase: "confidential information", Weight: 3},
				{Phrase: "confidentiality", Weight: 2},
				{Phrase: "trade secret", Weight: 2},
				{Phrase: "proprietary information", Weight: 2},
			},
			model.TypeEmployment: {
				{Phrase: "employment agreement", Weight: 3},
				{Phrase: "offer letter", Weight: 3},
				{Phrase: "employee", Weight: 2},
				{Phrase: "employer", Weight: 2},
				{Phrase: "at-will", Weight: 2},
				{Phrase: "salary", Weight: 2},
				{Phrase: "compensation", Weight: 2},
				{Phrase: "job title", Weight: 1},
				{Phrase: "benefits", Weight: 1},
			},
			model.TypeService: {
				{Phrase: "service level agreement", Weight: 3},
				{Phrase: "statement of work", Weight: 3},
				{Phrase: "master services agreement", Weight: 3},
				{Phrase: "service provider", Weight: 3},
				{Phrase: "scope of services", Weight: 3},
				{Phrase: "consulting services", Weight: 2},
				{Phrase: "service fees", Weight: 2},
				{Phrase: "deliverables", Weight: 1},
				{Phrase: "uptime", Weight: 1},
			},
		},
		MinScore: 3,
		Priority: []model.ContractType{model.TypeNDA, model.TypeEmployment, model.TypeService},
	}
}

type Result struct {
	Type   model.ContractType
	Scores map[model.ContractType]int
}

// Classify sums the weights of marker phrases present in the text.
// Each marker counts once no matter how often it repeats, so boilerplate
// repetition cannot inflate a score. Never fails: the worst case is
// unknown, which routes to the generic extractor.
func Classify(text string, cfg Config) Result {
	lower := strings.ToLower(text)

	scores := make(map[model.ContractType]int, len(cfg.Markers))
	for typ, markers := range cfg.Markers {
		score := 0
		for _, m := range markers {
			if strings.Contains(lower, m.Phrase) {
				score += m.Weight
			}
		}
		scores[typ] = score
	}

	best := model.TypeUnknown
	bestScore := 0
	// Walk in priority order so equal scores resolve deterministically.
	for _, typ := range cfg.Priority {
		if s := scores[typ]; s > bestScore {
			best = typ
			bestScore = s
		}
	}
	if bestScore < cfg.MinScore {
		best = model.TypeUnknown
	}

	return Result{Type: best, Scores: scores}
}
