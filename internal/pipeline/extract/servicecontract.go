package extract

import (
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

// extractService extracts tabular line items and a stated contract
// total, cross-validating quantity × unit price against stated line
// totals and the item sum against the stated total. Inconsistent data
// is reported at degraded confidence, not rejected.
func extractService(text string) *model.ContractData {
	data := &model.ContractData{
		Parties:               extractParties(text),
		AccountInfo:           extractAccountInfo(text),
		FinancialDetails:      extractServiceFinancials(text),
		PaymentTerms:          extractPaymentTerms(text),
		RevenueClassification: extractRevenue(text, model.TypeService),
		SLAInfo:               extractSLA(text),
	}
	return data
}

func extractServiceFinancials(text string) model.FinancialDetails {
	var fin model.FinancialDetails
	fin.LineItems = extractLineItems(text)
	fin.Currency = detectCurrency(text)

	if total, ok := statedTotal(text); ok {
		fin.TotalValue = model.FoundNumber(total, confStrong)
	}

	// Cross-validate the item sum against the stated total. A mismatch
	// beyond tolerance caps the whole section at degraded confidence.
	if fin.TotalValue.Present && len(fin.LineItems) > 0 {
		sum := 0.0
		for _, item := range fin.LineItems {
			sum += item.Total
		}
		if !approxEqual(sum, fin.TotalValue.Value) {
			degradeFinancials(&fin)
		}
	}
	return fin
}

// statedTotal finds the document-level stated total. Lines that are
// themselves line-item rows are skipped so an item's own total column
// is never mistaken for the contract total.
func statedTotal(text string) (float64, bool) {
	for _, line := range strings.Split(text, "\n") {
		if lineItemCommaRe.MatchString(line) || lineItemTimesRe.MatchString(line) {
			continue
		}
		m := statedTotalRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if total, ok := parseAmount(m[1]); ok {
			return total, true
		}
	}
	return 0, false
}

func extractLineItems(text string) []model.LineItem {
	items := []model.LineItem{}
	seen := make(map[string]bool)

	collect := func(matches [][]string) {
		for _, m := range matches {
			desc := strings.TrimSpace(m[1])
			if desc == "" || seen[strings.ToLower(desc)] {
				continue
			}
			qty, okQty := parseAmount(m[2])
			unit, okUnit := parseAmount(m[3])
			if !okQty || !okUnit {
				continue
			}

			item := model.LineItem{
				Description: desc,
				Quantity:    qty,
				UnitPrice:   unit,
			}
			if m[4] != "" {
				stated, ok := parseAmount(m[4])
				if !ok {
					continue
				}
				item.Total = stated
				if approxEqual(qty*unit, stated) {
					item.Confidence = confStrong
				} else {
					// Arithmetic does not hold; keep the stated figure
					// but flag it.
					item.Confidence = confInferred
				}
			} else {
				item.Total = qty * unit
				item.Confidence = confComputed
			}
			seen[strings.ToLower(desc)] = true
			items = append(items, item)
		}
	}

	collect(lineItemCommaRe.FindAllStringSubmatch(text, -1))
	collect(lineItemTimesRe.FindAllStringSubmatch(text, -1))
	return items
}

func degradeFinancials(fin *model.FinancialDetails) {
	fin.TotalValue.Confidence = capConfidence(fin.TotalValue.Confidence, confInferred)
	fin.Currency.Confidence = capConfidence(fin.Currency.Confidence, confInferred)
	fin.PayPeriod.Confidence = capConfidence(fin.PayPeriod.Confidence, confInferred)
	for i := range fin.LineItems {
		fin.LineItems[i].Confidence = capConfidence(fin.LineItems[i].Confidence, confInferred)
	}
}
