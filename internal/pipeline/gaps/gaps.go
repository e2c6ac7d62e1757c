// Package gaps compares extracted contract data against a per-type
// required-field checklist and produces templated recommendations.
package gaps

import "github.com/nurpe/contract-intel/internal/model"

// MissingThreshold marks a field as missing when its confidence falls
// below it, even if a value was technically extracted.
const MissingThreshold = 0.3

type check struct {
	field    string
	critical bool
	advice   string
	missing  func(d *model.ContractData) bool
}

// Analyze walks the checklist for the contract's type. Every critical
// gap is also listed as a missing field, and recommendations come from
// a fixed template per failed check.
func Analyze(data *model.ContractData) model.GapAnalysis {
	checks := standardChecks
	reviewAdvice := "Manual review required for critical missing information"
	if data.ContractType == model.TypeNDA {
		checks = ndaChecks
		reviewAdvice = "Manual review required for critical missing NDA elements"
	}

	out := model.GapAnalysis{
		MissingFields:   []string{},
		CriticalGaps:    []string{},
		Recommendations: []string{},
	}
	var advice []string
	for _, c := range checks {
		if !c.missing(data) {
			continue
		}
		out.MissingFields = append(out.MissingFields, c.field)
		if c.critical {
			out.CriticalGaps = append(out.CriticalGaps, c.field)
		}
		if c.advice != "" {
			advice = append(advice, c.advice)
		}
	}

	if len(out.CriticalGaps) > 0 {
		out.Recommendations = append(out.Recommendations, reviewAdvice)
	}
	out.Recommendations = append(out.Recommendations, advice...)
	if len(out.MissingFields) > 3 {
		out.Recommendations = append(out.Recommendations, "Consider a template-based contract structure")
	}
	return out
}

var standardChecks = []check{
	{
		field:    "parties",
		critical: true,
		advice:   "Identify all contracting parties by name and role",
		missing:  func(d *model.ContractData) bool { return len(d.Parties) == 0 },
	},
	{
		field:    "total_contract_value",
		critical: true,
		advice:   "State the total contract value explicitly",
		missing:  func(d *model.ContractData) bool { return lowNumber(d.FinancialDetails.TotalValue) },
	},
	{
		field:    "payment_terms",
		critical: true,
		advice:   "Define payment terms such as Net 30 and the payment method",
		missing:  func(d *model.ContractData) bool { return lowString(d.PaymentTerms.Terms) },
	},
	{
		field:   "sla_performance_metrics",
		advice:  "Define measurable performance metrics and benchmarks",
		missing: func(d *model.ContractData) bool { return len(d.SLAInfo.PerformanceMetrics) == 0 },
	},
	{
		field:   "support_terms",
		advice:  "Specify support hours and escalation terms",
		missing: func(d *model.ContractData) bool { return lowString(d.SLAInfo.SupportTerms) },
	},
	{
		field:   "billing_contact",
		advice:  "Name a billing contact for invoicing",
		missing: func(d *model.ContractData) bool { return lowString(d.AccountInfo.BillingContact) },
	},
}

// The NDA checklist skips financial and payment checks entirely; their
// absence is the structurally correct outcome for an NDA.
var ndaChecks = []check{
	{
		field:    "parties",
		critical: true,
		advice:   "Identify the disclosing and receiving parties by name",
		missing:  func(d *model.ContractData) bool { return len(d.Parties) == 0 },
	},
	{
		field:   "disclosing_party",
		advice:  "Label the disclosing party explicitly",
		missing: func(d *model.ContractData) bool { return len(d.Parties) > 0 && !hasRole(d, "disclosing_party") },
	},
	{
		field:   "receiving_party",
		advice:  "Label the receiving party explicitly",
		missing: func(d *model.ContractData) bool { return len(d.Parties) > 0 && !hasRole(d, "receiving_party") },
	},
	{
		field:    "confidentiality_period",
		critical: true,
		advice:   "Define an explicit confidentiality period",
		missing: func(d *model.ContractData) bool {
			return d.NDATerms == nil || lowString(d.NDATerms.ConfidentialityPeriod)
		},
	},
	{
		field:  "obligation_statement",
		advice: "Include an explicit confidentiality obligation clause",
		missing: func(d *model.ContractData) bool {
			return d.NDATerms == nil || lowBool(d.NDATerms.ObligationStatement)
		},
	},
	{
		field:   "billing_contact",
		advice:  "Name a contact for notices under the agreement",
		missing: func(d *model.ContractData) bool { return lowString(d.AccountInfo.BillingContact) },
	},
}

func hasRole(d *model.ContractData, role string) bool {
	for _, p := range d.Parties {
		if p.Role == role {
			return true
		}
	}
	return false
}

func lowString(f model.StringField) bool {
	return !f.Present || f.Confidence < MissingThreshold
}

func lowNumber(f model.NumberField) bool {
	return !f.Present || f.Confidence < MissingThreshold
}

func lowBool(f model.BoolField) bool {
	return !f.Present || f.Confidence < MissingThreshold
}
