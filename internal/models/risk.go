package models

// RiskTier is the ordinal level assigned to a single risk signal.
type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

// Indicator returns the colour used when displaying the tier.
func (t RiskTier) Indicator() string {
	switch t {
	case RiskTierHigh:
		return "red"
	case RiskTierMedium:
		return "yellow"
	default:
		return "green"
	}
}

// Risk returns the human readable risk wording, e.g. "Medium Risk".
func (t RiskTier) Risk() string {
	switch t {
	case RiskTierHigh:
		return "High Risk"
	case RiskTierMedium:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}

// RiskFactor is the commentary produced for one input signal.
type RiskFactor struct {
	Signal string
	Tier   RiskTier
	Level  string
}

// Text renders the factor the way the result panel shows it,
// e.g. "Moderate (Medium Risk)".
func (f RiskFactor) Text() string {
	return f.Level + " (" + f.Tier.Risk() + ")"
}

// Verdict is the classifier outcome shown to the student.
type Verdict string

const (
	VerdictHigh Verdict = "high"
	VerdictLow  Verdict = "low"
)

// Message returns the banner text of the verdict.
func (v Verdict) Message() string {
	if v == VerdictHigh {
		return "High Risk Detected, Depression"
	}
	return "Low Risk Detected, No Depression"
}
