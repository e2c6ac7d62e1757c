package extract

import (
	"regexp"
	"strings"

	"github.com/nurpe/contract-intel/internal/model"
)

func extractAccountInfo(text string) model.AccountInfo {
	var info model.AccountInfo
	if m := accountNumberRe.FindStringSubmatch(text); m != nil {
		info.AccountNumber = model.FoundString(m[1], confComputed)
	}
	if m := billingContactRe.FindStringSubmatch(text); m != nil {
		info.BillingContact = model.FoundString(strings.TrimSpace(m[1]), confComputed)
	}
	return info
}

func extractPaymentTerms(text string) model.PaymentTerms {
	var terms model.PaymentTerms

	switch {
	case paymentTermsLineRe.MatchString(text):
		m := paymentTermsLineRe.FindStringSubmatch(text)
		terms.Terms = model.FoundString(strings.TrimSpace(m[1]), confStrong)
	case netTermsRe.MatchString(text):
		m := netTermsRe.FindStringSubmatch(text)
		terms.Terms = model.FoundString("Net "+m[1], confComputed)
	case payWithinRe.MatchString(text):
		m := payWithinRe.FindStringSubmatch(text)
		terms.Terms = model.FoundString("Payable within "+m[1]+" days", confComputed)
	}

	if m := paymentMethodRe.FindStringSubmatch(text); m != nil {
		terms.Method = model.FoundString(strings.TrimSpace(m[1]), confStrong)
	} else if m := paymentViaRe.FindStringSubmatch(text); m != nil {
		terms.Method = model.FoundString(strings.ToLower(m[1]), confComputed)
	}

	if m := scheduleRe.FindStringSubmatch(text); m != nil {
		terms.Schedule = model.FoundString(strings.ToLower(m[1]), confComputed)
	}
	return terms
}

func extractRevenue(text string, typ model.ContractType) model.RevenueClassification {
	var rev model.RevenueClassification

	switch typ {
	case model.TypeNDA:
		rev.PaymentType = model.FoundString("nda", confStrong)
		rev.BillingCycle = model.FoundString("one_time", confStrong)
	case model.TypeEmployment:
		rev.PaymentType = model.FoundString("employment", confStrong)
		rev.BillingCycle = model.FoundString("recurring", confComputed)
	default:
		if m := billingCycleRe.FindStringSubmatch(text); m != nil {
			cycle := strings.ToLower(m[1])
			if cycle == "yearly" {
				cycle = "annually"
			}
			rev.PaymentType = model.FoundString("recurring", confComputed)
			rev.BillingCycle = model.FoundString(cycle, confComputed)
		} else {
			rev.PaymentType = model.FoundString("one_time", confInferred)
		}
	}

	if autoRenewRe.MatchString(text) {
		rev.AutoRenewal = model.FoundBool(true, confStrong)
	}
	if m := durationRe.FindStringSubmatch(text); m != nil {
		rev.Duration = model.FoundString(m[1]+" "+strings.ToLower(m[2]), confComputed)
	}
	return rev
}

// extractSLA collects uptime, response-time and support-window phrases.
// Metrics keep document order and are deduplicated verbatim.
func extractSLA(text string) model.SLAInfo {
	var sla model.SLAInfo
	seen := make(map[string]bool)

	add := func(metric string) {
		metric = strings.TrimSpace(metric)
		if metric == "" || seen[metric] {
			return
		}
		seen[metric] = true
		sla.PerformanceMetrics = append(sla.PerformanceMetrics, metric)
	}

	for _, re := range []*regexp.Regexp{uptimeRe, uptimeRevRe, responseTimeRe, respondWithinRe} {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}

	if len(sla.PerformanceMetrics) > 0 {
		sla.MetricsConfidence = confComputed
	}
	if m := supportWindowRe.FindStringSubmatch(text); m != nil {
		sla.SupportTerms = model.FoundString(m[1]+" support", confComputed)
	}
	return sla
}
