package extract

import (
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

const maxParties = 5

var anchorRoles = map[string]string{
	"disclosing party": "disclosing_party",
	"receiving party":  "receiving_party",
	"employer":         "employer",
	"employee":         "employee",
	"customer":         "customer",
	"client":           "customer",
	"vendor":           "vendor",
	"supplier":         "vendor",
	"service provider": "vendor",
	"contractor":       "vendor",
}

// extractParties scans for labeled party blocks first; labeled matches
// score full confidence. When nothing is labeled it falls back to
// capitalized company spans near the head of the document at half
// confidence.
func extractParties(text string) []model.PartyInfo {
	var parties []model.PartyInfo
	seen := make(map[string]bool)

	for _, m := range partyLineRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[2])
		if name == "" || len(name) > 200 {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		parties = append(parties, model.PartyInfo{
			Name:       name,
			Role:       anchorRoles[strings.ToLower(m[1])],
			Confidence: confLabeled,
		})
	}

	if len(parties) == 0 {
		parties = heuristicParties(text, seen)
	}

	if len(parties) > maxParties {
		parties = parties[:maxParties]
	}
	return parties
}

// heuristicParties looks for company-shaped names in the opening
// boilerplate (first 20 lines), penalized relative to labeled matches.
func heuristicParties(text string, seen map[string]bool) []model.PartyInfo {
	lines := strings.Split(text, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	head := strings.Join(lines, "\n")

	var parties []model.PartyInfo
	for _, m := range companySpanRe.FindAllStringSubmatch(head, -1) {
		name := strings.TrimSpace(m[1])
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		parties = append(parties, model.PartyInfo{
			Name:       name,
			Role:       "third_party",
			Confidence: confInferred,
		})
	}
	return parties
}
