package extract

import (
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

// extractNDA handles non-disclosure agreements. Financial and payment
// sections short-circuit to structurally-not-applicable results: their
// absence is the correct outcome for an NDA, never a gap.
func extractNDA(text string) *model.ContractData {
	data := &model.ContractData{
		Parties:     extractParties(text),
		AccountInfo: extractAccountInfo(text),
		FinancialDetails: model.FinancialDetails{
			TotalValue: model.NumberField{Confidence: 1},
			Currency:   model.NotApplicableString(),
			PayPeriod:  model.NotApplicableString(),
			LineItems:  []model.LineItem{},
		},
		PaymentTerms: model.PaymentTerms{
			Terms:    model.NotApplicableString(),
			Method:   model.NotApplicableString(),
			Schedule: model.NotApplicableString(),
		},
		RevenueClassification: extractRevenue(text, model.TypeNDA),
		SLAInfo:               extractSLA(text),
		NDATerms:              extractNDATerms(text),
	}
	return data
}

func extractNDATerms(text string) *model.NDATerms {
	terms := &model.NDATerms{}

	if m := confidentialityPeriodRe.FindStringSubmatch(text); m != nil {
		terms.ConfidentialityPeriod = model.FoundString(m[1]+" "+strings.ToLower(m[2]), confStrong)
	} else if m := confidentialityForRe.FindStringSubmatch(text); m != nil {
		terms.ConfidentialityPeriod = model.FoundString(m[1]+" "+strings.ToLower(m[2]), confComputed)
	}

	if obligationRe.MatchString(text) {
		terms.ObligationStatement = model.FoundBool(true, confStrong)
	}
	if mutualRe.MatchString(text) {
		terms.Mutual = model.FoundBool(true, confComputed)
	}
	return terms
}
