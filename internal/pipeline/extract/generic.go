package extract

import "github.com/nurpe/contract-intel/internal/model"

// extractGeneric handles unclassified documents: the service patterns
// run without type-specific weighting and every confidence is capped,
// to avoid implying certainty about a document we could not classify.
func extractGeneric(text string) *model.ContractData {
	data := extractService(text)
	data.RevenueClassification = extractRevenue(text, model.TypeUnknown)
	capData(data, genericCeiling)
	return data
}

func capData(data *model.ContractData, ceiling float64) {
	for i := range data.Parties {
		data.Parties[i].Confidence = capConfidence(data.Parties[i].Confidence, ceiling)
	}

	capString := func(f *model.StringField) { f.Confidence = capConfidence(f.Confidence, ceiling) }
	capNumber := func(f *model.NumberField) { f.Confidence = capConfidence(f.Confidence, ceiling) }
	capBool := func(f *model.BoolField) { f.Confidence = capConfidence(f.Confidence, ceiling) }

	capString(&data.AccountInfo.AccountNumber)
	capString(&data.AccountInfo.BillingContact)

	capNumber(&data.FinancialDetails.TotalValue)
	capString(&data.FinancialDetails.Currency)
	capString(&data.FinancialDetails.PayPeriod)
	for i := range data.FinancialDetails.LineItems {
		data.FinancialDetails.LineItems[i].Confidence = capConfidence(data.FinancialDetails.LineItems[i].Confidence, ceiling)
	}

	capString(&data.PaymentTerms.Terms)
	capString(&data.PaymentTerms.Method)
	capString(&data.PaymentTerms.Schedule)

	capString(&data.RevenueClassification.PaymentType)
	capString(&data.RevenueClassification.BillingCycle)
	capBool(&data.RevenueClassification.AutoRenewal)
	capString(&data.RevenueClassification.Duration)

	capString(&data.SLAInfo.SupportTerms)
	data.SLAInfo.MetricsConfidence = capConfidence(data.SLAInfo.MetricsConfidence, ceiling)
}
