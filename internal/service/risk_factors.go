package service

import "github.com/noah-isme/riskcheck-api/internal/models"

// Signal names shown in the detailed analysis.
const (
	SignalAcademicPressure  = "Academic Pressure"
	SignalWorkPressure      = "Work Pressure"
	SignalSleepDuration     = "Sleep Duration"
	SignalStudySatisfaction = "Study Satisfaction"
	SignalFinancialStress   = "Financial Stress"
	SignalSuicidalThoughts  = "Suicidal Thoughts"
	SignalFamilyHistory     = "Family History"
)

// The pressure thresholds sit above the 0-5 range of the form control, so the
// high tier cannot be reached from the questionnaire. Kept as is until the
// product owners decide on the intended scale.
const (
	pressureHighThreshold   = 8
	pressureMediumThreshold = 5
)

// AcademicPressureFactor classifies the academic pressure rating.
func AcademicPressureFactor(value int) models.RiskFactor {
	return pressureFactor(SignalAcademicPressure, value)
}

// WorkPressureFactor classifies the work pressure rating.
func WorkPressureFactor(value int) models.RiskFactor {
	return pressureFactor(SignalWorkPressure, value)
}

func pressureFactor(signal string, value int) models.RiskFactor {
	switch {
	case value >= pressureHighThreshold:
		return models.RiskFactor{Signal: signal, Tier: models.RiskTierHigh, Level: "High"}
	case value >= pressureMediumThreshold:
		return models.RiskFactor{Signal: signal, Tier: models.RiskTierMedium, Level: "Moderate"}
	default:
		return models.RiskFactor{Signal: signal, Tier: models.RiskTierLow, Level: "Low"}
	}
}

// SleepDurationFactor classifies the sleep bucket.
func SleepDurationFactor(value models.SleepDuration) models.RiskFactor {
	switch value {
	case models.SleepLessThan5:
		return models.RiskFactor{Signal: SignalSleepDuration, Tier: models.RiskTierHigh, Level: "Poor"}
	case models.Sleep5To6, models.Sleep7To8:
		return models.RiskFactor{Signal: SignalSleepDuration, Tier: models.RiskTierMedium, Level: "Suboptimal"}
	default:
		return models.RiskFactor{Signal: SignalSleepDuration, Tier: models.RiskTierLow, Level: "Good"}
	}
}

// StudySatisfactionFactor classifies the study satisfaction rating. Lower is worse.
func StudySatisfactionFactor(value int) models.RiskFactor {
	switch {
	case value <= 3:
		return models.RiskFactor{Signal: SignalStudySatisfaction, Tier: models.RiskTierHigh, Level: "Very Low"}
	case value <= 6:
		return models.RiskFactor{Signal: SignalStudySatisfaction, Tier: models.RiskTierMedium, Level: "Moderate"}
	default:
		return models.RiskFactor{Signal: SignalStudySatisfaction, Tier: models.RiskTierLow, Level: "High"}
	}
}

// FinancialStressFactor classifies the financial stress rating.
func FinancialStressFactor(value int) models.RiskFactor {
	switch {
	case value >= 4:
		return models.RiskFactor{Signal: SignalFinancialStress, Tier: models.RiskTierHigh, Level: "High"}
	case value >= 3:
		return models.RiskFactor{Signal: SignalFinancialStress, Tier: models.RiskTierMedium, Level: "Moderate"}
	default:
		return models.RiskFactor{Signal: SignalFinancialStress, Tier: models.RiskTierLow, Level: "Low"}
	}
}

// SuicidalThoughtsFactor classifies the suicidal thoughts history.
func SuicidalThoughtsFactor(value models.Answer) models.RiskFactor {
	if value == models.AnswerYes {
		return models.RiskFactor{Signal: SignalSuicidalThoughts, Tier: models.RiskTierHigh, Level: "Present"}
	}
	return models.RiskFactor{Signal: SignalSuicidalThoughts, Tier: models.RiskTierLow, Level: "None"}
}

// FamilyHistoryFactor classifies the family history of mental illness.
func FamilyHistoryFactor(value models.Answer) models.RiskFactor {
	if value == models.AnswerYes {
		return models.RiskFactor{Signal: SignalFamilyHistory, Tier: models.RiskTierMedium, Level: "Present"}
	}
	return models.RiskFactor{Signal: SignalFamilyHistory, Tier: models.RiskTierLow, Level: "None"}
}

// RiskFactors runs every independent check in display order.
func RiskFactors(input models.Assessment) []models.RiskFactor {
	return []models.RiskFactor{
		AcademicPressureFactor(input.AcademicPressure),
		WorkPressureFactor(input.WorkPressure),
		SleepDurationFactor(input.SleepDuration),
		StudySatisfactionFactor(input.StudySatisfaction),
		FinancialStressFactor(input.FinancialStress),
		SuicidalThoughtsFactor(input.SuicidalThoughts),
		FamilyHistoryFactor(input.FamilyHistory),
	}
}
