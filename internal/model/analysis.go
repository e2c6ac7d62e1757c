package model

type ContractType string

const (
	TypeNDA        ContractType = "nda"
	TypeEmployment ContractType = "employment"
	TypeService    ContractType = "service"
	TypeUnknown    ContractType = "unknown"
)

// StringField is an extracted text field with its own confidence.
// Present=false with Confidence=0 means the extractor found nothing;
// Present=false with Confidence=1 means the field is structurally
// not applicable for the contract type and its absence is correct.
type StringField struct {
	Value      string  `json:"value,omitempty"`
	Present    bool    `json:"present"`
	Confidence float64 `json:"confidence"`
}

type NumberField struct {
	Value      float64 `json:"value,omitempty"`
	Present    bool    `json:"present"`
	Confidence float64 `json:"confidence"`
}

type BoolField struct {
	Value      bool    `json:"value,omitempty"`
	Present    bool    `json:"present"`
	Confidence float64 `json:"confidence"`
}

func FoundString(value string, confidence float64) StringField {
	return StringField{Value: value, Present: true, Confidence: confidence}
}

func FoundNumber(value float64, confidence float64) NumberField {
	return NumberField{Value: value, Present: true, Confidence: confidence}
}

func FoundBool(value bool, confidence float64) BoolField {
	return BoolField{Value: value, Present: true, Confidence: confidence}
}

// NotApplicableString marks a field whose correct value is "none".
func NotApplicableString() StringField {
	return StringField{Confidence: 1}
}

type PartyInfo struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"` // disclosing_party, receiving_party, employer, employee, customer, vendor, third_party
	Confidence float64 `json:"confidence"`
}

type AccountInfo struct {
	AccountNumber  StringField `json:"account_number"`
	BillingContact StringField `json:"billing_contact"`
	Confidence     float64     `json:"confidence_score"`
}

// LineItem is one row of an itemized financial schedule.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Confidence  float64 `json:"confidence"`
}

type FinancialDetails struct {
	TotalValue NumberField `json:"total_contract_value"`
	Currency   StringField `json:"currency"`
	PayPeriod  StringField `json:"pay_period"`
	LineItems  []LineItem  `json:"line_items"`
	Confidence float64     `json:"confidence_score"`
}

type PaymentTerms struct {
	Terms      StringField `json:"payment_terms"`
	Method     StringField `json:"payment_method"`
	Schedule   StringField `json:"payment_schedule"`
	Confidence float64     `json:"confidence_score"`
}

type RevenueClassification struct {
	PaymentType  StringField `json:"payment_type"`  // recurring, one_time, nda, employment
	BillingCycle StringField `json:"billing_cycle"` // monthly, quarterly, annually, one_time
	AutoRenewal  BoolField   `json:"auto_renewal"`
	Duration     StringField `json:"contract_duration"`
	Confidence   float64     `json:"confidence_score"`
}

type SLAInfo struct {
	PerformanceMetrics []string `json:"performance_metrics"`
	// MetricsConfidence scores the metrics as a group; individual
	// phrases are kept verbatim and carry no per-item confidence.
	MetricsConfidence float64     `json:"metrics_confidence"`
	SupportTerms      StringField `json:"support_terms"`
	Confidence         float64     `json:"confidence_score"`
}

// NDATerms carries the NDA-specific elements probed during extraction
// and gap analysis. Nil on non-NDA contracts.
type NDATerms struct {
	ConfidentialityPeriod StringField `json:"confidentiality_period"`
	ObligationStatement   BoolField   `json:"obligation_statement"`
	Mutual                BoolField   `json:"mutual"`
	Confidence            float64     `json:"confidence_score"`
}

// StructureInfo describes how well the document itself yielded to
// extraction, independent of any one field.
type StructureInfo struct {
	PageCount  int     `json:"page_count"`
	CharCount  int     `json:"char_count"`
	Confidence float64 `json:"confidence_score"`
}

type GapAnalysis struct {
	MissingFields   []string `json:"missing_fields"`
	CriticalGaps    []string `json:"critical_gaps"`
	Recommendations []string `json:"recommendations"`
}

// ContractData is the complete result of one pipeline run. It is
// immutable once produced; a new run replaces it, never patches it.
type ContractData struct {
	ContractType          ContractType          `json:"contract_type"`
	Parties               []PartyInfo           `json:"parties"`
	PartiesConfidence     float64               `json:"parties_confidence_score"`
	AccountInfo           AccountInfo           `json:"account_info"`
	FinancialDetails      FinancialDetails      `json:"financial_details"`
	PaymentTerms          PaymentTerms          `json:"payment_terms"`
	RevenueClassification RevenueClassification `json:"revenue_classification"`
	SLAInfo               SLAInfo               `json:"sla_info"`
	NDATerms              *NDATerms             `json:"nda_terms,omitempty"`
	Structure             StructureInfo         `json:"structure"`
	OverallConfidence     int                   `json:"overall_confidence_score"` // 0..100
	GapAnalysis           GapAnalysis           `json:"gap_analysis"`
}
