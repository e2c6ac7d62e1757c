package extract

import (
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

// extractEmployment extracts a compensation figure with currency and
// pay-period unit. Confidence is scaled down when either the currency
// or the period has to be inferred from context rather than stated.
func extractEmployment(text string) *model.ContractData {
	data := &model.ContractData{
		Parties:               extractParties(text),
		AccountInfo:           extractAccountInfo(text),
		FinancialDetails:      extractCompensation(text),
		PaymentTerms:          extractPaymentTerms(text),
		RevenueClassification: extractRevenue(text, model.TypeEmployment),
		SLAInfo:               extractSLA(text),
	}
	return data
}

func extractCompensation(text string) model.FinancialDetails {
	var fin model.FinancialDetails
	fin.LineItems = []model.LineItem{}

	m := salaryRe.FindStringSubmatch(text)
	if m == nil {
		return fin
	}

	amount, ok := parseAmount(m[1])
	if !ok {
		return fin
	}

	salaryConf := confStrong
	if m[2] != "" {
		period := strings.ToLower(m[2])
		if period == "annum" {
			period = "year"
		}
		fin.PayPeriod = model.FoundString(period, confStrong)
	} else {
		// Period not stated next to the figure; infer from context.
		switch {
		case annualHintRe.MatchString(text):
			fin.PayPeriod = model.FoundString("year", confInferred)
		case monthlyHintRe.MatchString(text):
			fin.PayPeriod = model.FoundString("month", confInferred)
		}
		salaryConf = confStrong * 0.7
	}
	fin.TotalValue = model.FoundNumber(amount, salaryConf)

	fin.Currency = detectCurrency(text)
	return fin
}

// detectCurrency prefers a stated currency code over the bare symbol.
func detectCurrency(text string) model.StringField {
	if m := currencyWordRe.FindStringSubmatch(text); m != nil {
		code := strings.ToUpper(m[1])
		switch {
		case strings.HasPrefix(code, "US"):
			code = "USD"
		case strings.HasPrefix(code, "EURO"):
			code = "EUR"
		case strings.HasPrefix(code, "POUND"):
			code = "GBP"
		}
		return model.FoundString(code, confStrong)
	}
	// The bare symbol still states the currency, just less precisely.
	if strings.Contains(text, "$") {
		return model.FoundString("USD", confComputed)
	}
	return model.StringField{}
}
