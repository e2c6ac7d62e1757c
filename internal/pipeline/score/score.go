// Package score aggregates per-field confidences into section scores
// and a single overall score using type-specific weight tables.
package score

import (
	"math"

	"github.com/nurpe/contract-intel/internal/model"
)

type Section string

const (
	SectionParties     Section = "parties"
	SectionFinancial   Section = "financial"
	SectionPayment     Section = "payment_terms"
	SectionSLA         Section = "sla"
	SectionContact     Section = "contact"
	SectionNDAElements Section = "nda_elements"
	SectionStructure   Section = "structure"
)

var allSections = []Section{
	SectionParties, SectionFinancial, SectionPayment, SectionSLA,
	SectionContact, SectionNDAElements, SectionStructure,
}

// WeightTable maps sections to their share of the overall score.
// Tables are static configuration and must sum to exactly 100.
type WeightTable map[Section]int

func (t WeightTable) Sum() int {
	sum := 0
	for _, w := range t {
		sum += w
	}
	return sum
}

// StandardWeights applies to employment, service and unknown contracts.
func StandardWeights() WeightTable {
	return WeightTable{
		SectionFinancial: 30,
		SectionParties:   25,
		SectionPayment:   20,
		SectionSLA:       15,
		SectionContact:   10,
	}
}

// NDAWeights shifts weight to the sections an NDA actually has.
func NDAWeights() WeightTable {
	return WeightTable{
		SectionParties:     40,
		SectionNDAElements: 30,
		SectionContact:     20,
		SectionStructure:   10,
	}
}

func weightsFor(typ model.ContractType) WeightTable {
	if typ == model.TypeNDA {
		return NDAWeights()
	}
	return StandardWeights()
}

// notApplicable reports whether an empty section is structurally
// correct rather than a miss for the given type.
func notApplicable(typ model.ContractType, section Section) bool {
	return typ == model.TypeNDA &&
		(section == SectionFinancial || section == SectionPayment || section == SectionSLA)
}

// Apply fills every section confidence on data and computes the overall
// score. Section confidence is the mean over the section's present
// fields; an empty section scores 1.0 when structurally not applicable
// and 0 when expected but missing.
func Apply(data *model.ContractData) {
	data.PartiesConfidence = partiesConfidence(data)
	data.FinancialDetails.Confidence = sectionConfidence(data, SectionFinancial, financialFields(data))
	data.PaymentTerms.Confidence = sectionConfidence(data, SectionPayment, paymentFields(data))
	data.SLAInfo.Confidence = sectionConfidence(data, SectionSLA, slaFields(data))
	data.AccountInfo.Confidence = sectionConfidence(data, SectionContact, contactFields(data))
	data.RevenueClassification.Confidence = meanPresent(revenueFields(data), 0)
	if data.NDATerms != nil {
		data.NDATerms.Confidence = meanPresent(ndaFields(data), 0)
	}

	// Fixed iteration order keeps the float accumulation, and with it
	// the rounded result, deterministic across runs.
	weights := weightsFor(data.ContractType)
	overall := 0.0
	for _, section := range allSections {
		if weight, ok := weights[section]; ok {
			overall += float64(weight) * confidenceOf(data, section)
		}
	}
	data.OverallConfidence = clampScore(int(math.Round(overall)))
}

type field struct {
	present    bool
	confidence float64
}

func confidenceOf(data *model.ContractData, section Section) float64 {
	switch section {
	case SectionParties:
		return data.PartiesConfidence
	case SectionFinancial:
		return data.FinancialDetails.Confidence
	case SectionPayment:
		return data.PaymentTerms.Confidence
	case SectionSLA:
		return data.SLAInfo.Confidence
	case SectionContact:
		return data.AccountInfo.Confidence
	case SectionNDAElements:
		if data.NDATerms == nil {
			return 0
		}
		return data.NDATerms.Confidence
	case SectionStructure:
		return data.Structure.Confidence
	}
	return 0
}

func sectionConfidence(data *model.ContractData, section Section, fields []field) float64 {
	fallback := 0.0
	if notApplicable(data.ContractType, section) {
		fallback = 1
	}
	return meanPresent(fields, fallback)
}

func meanPresent(fields []field, fallback float64) float64 {
	sum := 0.0
	n := 0
	for _, f := range fields {
		if f.present {
			sum += f.confidence
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}

func partiesConfidence(data *model.ContractData) float64 {
	if len(data.Parties) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range data.Parties {
		sum += p.Confidence
	}
	return sum / float64(len(data.Parties))
}

func financialFields(data *model.ContractData) []field {
	fin := data.FinancialDetails
	fields := []field{
		{fin.TotalValue.Present, fin.TotalValue.Confidence},
		{fin.Currency.Present, fin.Currency.Confidence},
		{fin.PayPeriod.Present, fin.PayPeriod.Confidence},
	}
	for _, item := range fin.LineItems {
		fields = append(fields, field{true, item.Confidence})
	}
	return fields
}

func paymentFields(data *model.ContractData) []field {
	p := data.PaymentTerms
	return []field{
		{p.Terms.Present, p.Terms.Confidence},
		{p.Method.Present, p.Method.Confidence},
		{p.Schedule.Present, p.Schedule.Confidence},
	}
}

func slaFields(data *model.ContractData) []field {
	s := data.SLAInfo
	return []field{
		{len(s.PerformanceMetrics) > 0, s.MetricsConfidence},
		{s.SupportTerms.Present, s.SupportTerms.Confidence},
	}
}

func contactFields(data *model.ContractData) []field {
	a := data.AccountInfo
	return []field{
		{a.AccountNumber.Present, a.AccountNumber.Confidence},
		{a.BillingContact.Present, a.BillingContact.Confidence},
	}
}

func revenueFields(data *model.ContractData) []field {
	r := data.RevenueClassification
	return []field{
		{r.PaymentType.Present, r.PaymentType.Confidence},
		{r.BillingCycle.Present, r.BillingCycle.Confidence},
		{r.AutoRenewal.Present, r.AutoRenewal.Confidence},
		{r.Duration.Present, r.Duration.Confidence},
	}
}

func ndaFields(data *model.ContractData) []field {
	n := data.NDATerms
	return []field{
		{n.ConfidentialityPeriod.Present, n.ConfidentialityPeriod.Confidence},
		{n.ObligationStatement.Present, n.ObligationStatement.Confidence},
		{n.Mutual.Present, n.Mutual.Confidence},
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
