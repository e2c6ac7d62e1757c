package extract

import "regexp"

// All extraction is anchored on precompiled patterns over normalized
// text. A field no pattern matches is recorded absent with confidence
// zero; pattern misses are never errors.
var (
	partyLineRe = regexp.MustCompile(`(?im)^\s*(disclosing party|receiving party|employer|employee|customer|client|vendor|supplier|service provider|contractor)\s*:\s*(.+?)\s*$`)

	// Unlabeled fallback: capitalized spans with a corporate suffix.
	companySpanRe = regexp.MustCompile(`\b([A-Z][A-Za-z&.]*(?:\s+[A-Z][A-Za-z&.]*)*\s+(?:Inc\.?|LLC|L\.L\.C\.|Ltd\.?|Corp\.?|Corporation|Company|Co\.|GmbH))\b`)

	statedTotalRe = regexp.MustCompile(`(?i)\btotal(?:\s+(?:contract\s+)?(?:value|amount|price|cost|fees?))?\s*:?\s*\$\s?([\d,]+(?:\.\d{1,2})?)`)
	currencyWordRe = regexp.MustCompile(`(?i)\b(USD|EUR|GBP|US dollars?|euros?|pounds sterling)\b`)

	// "Consulting Services, Qty 10, Unit Price $100.00[, Total $1,000.00]"
	lineItemCommaRe = regexp.MustCompile(`(?im)^(.{3,80}?),\s*qty\.?\s*(\d+(?:\.\d+)?),\s*unit price\s*\$?\s?([\d,]+(?:\.\d{1,2})?)(?:,\s*(?:line\s+)?total\s*\$?\s?([\d,]+(?:\.\d{1,2})?))?\s*$`)
	// "Consulting Services 10 x $100.00 = $1,000.00"
	lineItemTimesRe = regexp.MustCompile(`(?im)^(\S[^$\n]{2,60}?)\s+(\d+(?:\.\d+)?)\s*x\s*\$\s?([\d,]+(?:\.\d{1,2})?)\s*=\s*\$\s?([\d,]+(?:\.\d{1,2})?)\s*$`)

	salaryRe       = regexp.MustCompile(`(?i)(?:salary|compensation)[^$\n]{0,60}\$\s?([\d,]+(?:\.\d{1,2})?)(?:\s*(?:per|/|a)\s*(year|annum|month|week|hour))?`)
	annualHintRe   = regexp.MustCompile(`(?i)\b(annual|annually|per annum|yearly)\b`)
	monthlyHintRe  = regexp.MustCompile(`(?i)\b(monthly|per month)\b`)

	netTermsRe         = regexp.MustCompile(`(?i)\bnet\s*-?\s*(\d{1,3})\b`)
	payWithinRe        = regexp.MustCompile(`(?i)payable\s+within\s+(\d{1,3})\s+days`)
	paymentTermsLineRe = regexp.MustCompile(`(?im)^\s*payment terms\s*:\s*(.+?)\s*$`)
	paymentMethodRe    = regexp.MustCompile(`(?im)^\s*payment method\s*:\s*(.+?)\s*$`)
	paymentViaRe       = regexp.MustCompile(`(?i)\b(?:paid|payable|payment)\s+(?:by|via)\s+(wire transfer|bank transfer|ach|credit card|check|direct deposit)\b`)
	scheduleRe         = regexp.MustCompile(`(?i)\b(monthly|quarterly|annual|semi-monthly|bi-weekly|weekly)\s+(?:installment|payment|invoice|invoicing)s?\b`)

	billingCycleRe = regexp.MustCompile(`(?i)\b(monthly|quarterly|annually|yearly)\b`)
	autoRenewRe    = regexp.MustCompile(`(?i)\bauto[\s-]?renew(?:al|s|ed)?\b`)
	durationRe     = regexp.MustCompile(`(?i)(?:term of|for a (?:period|term) of|initial term of)\s+(\d+)\s*\(?\w*\)?\s*(years?|months?)`)

	uptimeRe       = regexp.MustCompile(`(?i)(\d{2,3}(?:\.\d+)?)\s*%\s*(?:uptime|availability|service level)`)
	uptimeRevRe    = regexp.MustCompile(`(?i)(?:uptime|availability)\s*(?:of\s+)?(?:at least\s+)?(\d{2,3}(?:\.\d+)?)\s*%`)
	responseTimeRe = regexp.MustCompile(`(?i)response time[^.\n]{0,40}?(\d+)\s*(hours?|minutes?|business days?|days?)`)
	respondWithinRe = regexp.MustCompile(`(?i)respond(?:ed)?\s+within\s+(\d+)\s*(hours?|minutes?|business days?|days?)`)
	supportWindowRe = regexp.MustCompile(`(?i)\b(24/7|24x7|8/5|9/5)\b`)

	accountNumberRe  = regexp.MustCompile(`(?im)^\s*(?:account|acct\.?|contract)\s*(?:number|no\.?|#|id)\s*:\s*([A-Za-z0-9-]+)\s*$`)
	billingContactRe = regexp.MustCompile(`(?im)^\s*(?:billing contact|bill to)\s*:\s*(.+?)\s*$`)

	confidentialityPeriodRe = regexp.MustCompile(`(?i)(?:confidentiality|non-disclosure)\s+(?:period|term)[^.\n]{0,40}?(\d+)\s*\(?\w*\)?\s*(years?|months?)`)
	confidentialityForRe    = regexp.MustCompile(`(?i)(?:remain confidential|obligations?\s+(?:shall|will)\s+(?:survive|continue))[^.\n]{0,60}?(\d+)\s*\(?\w*\)?\s*(years?|months?)`)
	obligationRe            = regexp.MustCompile(`(?i)(shall not disclose|shall hold[^.\n]{0,30}in (?:strict )?confidence|shall protect|obligations? of confidentiality|duty of confidentiality)`)
	mutualRe                = regexp.MustCompile(`(?i)\bmutual\b`)
)
