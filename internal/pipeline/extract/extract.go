// Package extract turns normalized contract text into partially filled
// contract data with per-field confidences. One strategy per contract
// type, selected by the classifier's tag; a generic fallback covers
// unclassified documents.
package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

// Confidence levels shared by the strategies.
const (
	confLabeled    = 1.0 // labeled anchor match
	confStrong     = 0.9 // unambiguous pattern match
	confComputed   = 0.8 // derived value (e.g. computed line total)
	confInferred   = 0.5 // heuristic or inferred match
	genericCeiling = 0.6 // cap applied by the unknown-type fallback
)

// crossCheckTolerance is the relative tolerance for line-item and total
// cross-validation. Mismatches degrade confidence, never abort.
const crossCheckTolerance = 0.01

// Run dispatches on the classified type and returns contract data with
// all sections filled in. Section-level and overall confidences are left
// to the scorer. A single field failing to match never aborts a run.
func Run(text string, typ model.ContractType) *model.ContractData {
	var data *model.ContractData
	switch typ {
	case model.TypeNDA:
		data = extractNDA(text)
	case model.TypeEmployment:
		data = extractEmployment(text)
	case model.TypeService:
		data = extractService(text)
	default:
		data = extractGeneric(text)
	}
	data.ContractType = typ
	return data
}

func parseAmount(raw string) (float64, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func approxEqual(a, b float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return true
	}
	return math.Abs(a-b) <= crossCheckTolerance*scale
}

func capConfidence(conf, ceiling float64) float64 {
	if conf > ceiling {
		return ceiling
	}
	return conf
}
