package dto

import "github.com/noah-isme/riskcheck-api/internal/models"

// AssessmentRequest is one questionnaire submission, either from the HTML form or the JSON API.
// Numeric answers are pointers so an omitted answer is told apart from a zero.
type AssessmentRequest struct {
	Age               *int                 `json:"age" form:"age" validate:"required,min=13,max=100"`
	CGPA              *float64             `json:"cgpa" form:"cgpa" validate:"required,min=0,max=10"`
	AcademicPressure  *int                 `json:"academic_pressure" form:"academic_pressure" validate:"required,min=0,max=5"`
	WorkPressure      *int                 `json:"work_pressure" form:"work_pressure" validate:"required,min=0,max=5"`
	StudySatisfaction *int                 `json:"study_satisfaction" form:"study_satisfaction" validate:"required,min=0,max=5"`
	JobSatisfaction   *int                 `json:"job_satisfaction" form:"job_satisfaction" validate:"required,min=0,max=4"`
	WorkStudyHours    *int                 `json:"work_study_hours" form:"work_study_hours" validate:"required,min=0,max=12"`
	FinancialStress   *int                 `json:"financial_stress" form:"financial_stress" validate:"required,min=1,max=5"`
	Gender            models.Gender        `json:"gender" form:"gender" validate:"required,option"`
	SleepDuration     models.SleepDuration `json:"sleep_duration" form:"sleep_duration" validate:"required,option"`
	DietaryHabits     models.DietaryHabit  `json:"dietary_habits" form:"dietary_habits" validate:"required,option"`
	SuicidalThoughts  models.Answer        `json:"suicidal_thoughts" form:"suicidal_thoughts" validate:"required,option"`
	FamilyHistory     models.Answer        `json:"family_history" form:"family_history" validate:"required,option"`
}

// ToModel converts the validated request into the domain assessment.
func (r AssessmentRequest) ToModel() models.Assessment {
	return models.Assessment{
		Age:               valueOf(r.Age),
		CGPA:              valueOf(r.CGPA),
		AcademicPressure:  valueOf(r.AcademicPressure),
		WorkPressure:      valueOf(r.WorkPressure),
		StudySatisfaction: valueOf(r.StudySatisfaction),
		JobSatisfaction:   valueOf(r.JobSatisfaction),
		WorkStudyHours:    valueOf(r.WorkStudyHours),
		FinancialStress:   valueOf(r.FinancialStress),
		Gender:            r.Gender,
		SleepDuration:     r.SleepDuration,
		DietaryHabits:     r.DietaryHabits,
		SuicidalThoughts:  r.SuicidalThoughts,
		FamilyHistory:     r.FamilyHistory,
	}
}

// NewAssessmentRequest builds a request carrying every answer of a.
func NewAssessmentRequest(a models.Assessment) AssessmentRequest {
	return AssessmentRequest{
		Age:               &a.Age,
		CGPA:              &a.CGPA,
		AcademicPressure:  &a.AcademicPressure,
		WorkPressure:      &a.WorkPressure,
		StudySatisfaction: &a.StudySatisfaction,
		JobSatisfaction:   &a.JobSatisfaction,
		WorkStudyHours:    &a.WorkStudyHours,
		FinancialStress:   &a.FinancialStress,
		Gender:            a.Gender,
		SleepDuration:     a.SleepDuration,
		DietaryHabits:     a.DietaryHabits,
		SuicidalThoughts:  a.SuicidalThoughts,
		FamilyHistory:     a.FamilyHistory,
	}
}

func valueOf[T int | float64](v *T) T {
	if v == nil {
		return 0
	}
	return *v
}

// RiskFactorResponse is the serialized commentary for one signal.
type RiskFactorResponse struct {
	Signal    string `json:"signal"`
	Tier      string `json:"tier"`
	Level     string `json:"level"`
	Risk      string `json:"risk"`
	Indicator string `json:"indicator"`
	Text      string `json:"text"`
}

// NewRiskFactorResponse converts a domain factor into a DTO.
func NewRiskFactorResponse(f models.RiskFactor) RiskFactorResponse {
	return RiskFactorResponse{
		Signal:    f.Signal,
		Tier:      string(f.Tier),
		Level:     f.Level,
		Risk:      f.Tier.Risk(),
		Indicator: f.Tier.Indicator(),
		Text:      f.Text(),
	}
}

// NewRiskFactorResponseSlice converts factors to DTOs.
func NewRiskFactorResponseSlice(items []models.RiskFactor) []RiskFactorResponse {
	out := make([]RiskFactorResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewRiskFactorResponse(item))
	}
	return out
}

// AssessmentResponse is the result panel of one submission.
type AssessmentResponse struct {
	Prediction     int                  `json:"prediction"`
	Probability    float64              `json:"probability"`
	RiskScore      string               `json:"risk_score"`
	Verdict        string               `json:"verdict"`
	VerdictMessage string               `json:"verdict_message"`
	Factors        []RiskFactorResponse `json:"factors"`
	Disclaimer     string               `json:"disclaimer"`
}

// HighRisk reports whether the classifier flagged the submission.
func (r AssessmentResponse) HighRisk() bool {
	return r.Verdict == string(models.VerdictHigh)
}

// FormField describes one questionnaire control.
type FormField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Control string   `json:"control"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
	Default string   `json:"default"`
	Options []string `json:"options,omitempty"`
	Help    string   `json:"help,omitempty"`
}

// FormSection groups questionnaire controls.
type FormSection struct {
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

// FormOptions is the full questionnaire description.
type FormOptions struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sections    []FormSection `json:"sections"`
}
