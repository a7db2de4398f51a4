package models

// Gender is the self-reported gender option offered by the questionnaire.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// GenderOptions lists the accepted genders in display order.
func GenderOptions() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Valid reports whether g is one of the declared options.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// SleepDuration buckets the average nightly sleep.
type SleepDuration string

const (
	SleepLessThan5 SleepDuration = "Less than 5 hours"
	Sleep5To6      SleepDuration = "5-6 hours"
	Sleep7To8      SleepDuration = "7-8 hours"
	SleepMoreThan8 SleepDuration = "More than 8 hours"
)

// SleepDurationOptions lists the sleep buckets in display order.
func SleepDurationOptions() []SleepDuration {
	return []SleepDuration{SleepLessThan5, Sleep5To6, Sleep7To8, SleepMoreThan8}
}

// Valid reports whether s is one of the declared buckets.
func (s SleepDuration) Valid() bool {
	switch s {
	case SleepLessThan5, Sleep5To6, Sleep7To8, SleepMoreThan8:
		return true
	}
	return false
}

// DietaryHabit buckets the self-reported diet quality.
type DietaryHabit string

const (
	DietHealthy   DietaryHabit = "Healthy"
	DietModerate  DietaryHabit = "Moderate"
	DietUnhealthy DietaryHabit = "Unhealthy"
)

// DietaryHabitOptions lists the diet buckets in display order.
func DietaryHabitOptions() []DietaryHabit {
	return []DietaryHabit{DietHealthy, DietModerate, DietUnhealthy}
}

// Valid reports whether d is one of the declared buckets.
func (d DietaryHabit) Valid() bool {
	switch d {
	case DietHealthy, DietModerate, DietUnhealthy:
		return true
	}
	return false
}

// Answer is a yes/no response to a history question.
type Answer string

const (
	AnswerNo  Answer = "No"
	AnswerYes Answer = "Yes"
)

// AnswerOptions lists the answers in display order.
func AnswerOptions() []Answer {
	return []Answer{AnswerNo, AnswerYes}
}

// Valid reports whether a is a declared answer.
func (a Answer) Valid() bool {
	return a == AnswerNo || a == AnswerYes
}

// Column names used by the trained classifier. Categorical indicators are
// derived as "<column>_<value>".
const (
	ColumnAge               = "Age"
	ColumnAcademicPressure  = "Academic Pressure"
	ColumnWorkPressure      = "Work Pressure"
	ColumnCGPA              = "CGPA"
	ColumnStudySatisfaction = "Study Satisfaction"
	ColumnJobSatisfaction   = "Job Satisfaction"
	ColumnWorkStudyHours    = "Work/Study Hours"
	ColumnFinancialStress   = "Financial Stress"
	ColumnGender            = "Gender"
	ColumnSleepDuration     = "Sleep Duration"
	ColumnDietaryHabits     = "Dietary Habits"
	ColumnSuicidalThoughts  = "Have you ever had suicidal thoughts ?"
	ColumnFamilyHistory     = "Family History of Mental Illness"
)

// Assessment is one submitted answer set. It is never persisted.
type Assessment struct {
	Age               int
	CGPA              float64
	AcademicPressure  int
	WorkPressure      int
	StudySatisfaction int
	JobSatisfaction   int
	WorkStudyHours    int
	FinancialStress   int
	Gender            Gender
	SleepDuration     SleepDuration
	DietaryHabits     DietaryHabit
	SuicidalThoughts  Answer
	FamilyHistory     Answer
}

// Range is the closed interval a numeric questionnaire control can produce.
type Range struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Declared ranges of the numeric controls.
var (
	AgeRange               = Range{Min: 13, Max: 100, Step: 1, Default: 13}
	CGPARange              = Range{Min: 0, Max: 10, Step: 0.01, Default: 0.01}
	AcademicPressureRange  = Range{Min: 0, Max: 5, Step: 1, Default: 0}
	WorkPressureRange      = Range{Min: 0, Max: 5, Step: 1, Default: 0}
	StudySatisfactionRange = Range{Min: 0, Max: 5, Step: 1, Default: 0}
	JobSatisfactionRange   = Range{Min: 0, Max: 4, Step: 1, Default: 0}
	WorkStudyHoursRange    = Range{Min: 0, Max: 12, Step: 1, Default: 0}
	FinancialStressRange   = Range{Min: 1, Max: 5, Step: 1, Default: 1}
)

// DefaultAssessment returns the answer set a freshly rendered form starts with.
func DefaultAssessment() Assessment {
	return Assessment{
		Age:               int(AgeRange.Default),
		CGPA:              CGPARange.Default,
		AcademicPressure:  int(AcademicPressureRange.Default),
		WorkPressure:      int(WorkPressureRange.Default),
		StudySatisfaction: int(StudySatisfactionRange.Default),
		JobSatisfaction:   int(JobSatisfactionRange.Default),
		WorkStudyHours:    int(WorkStudyHoursRange.Default),
		FinancialStress:   int(FinancialStressRange.Default),
		Gender:            GenderMale,
		SleepDuration:     SleepLessThan5,
		DietaryHabits:     DietHealthy,
		SuicidalThoughts:  AnswerNo,
		FamilyHistory:     AnswerNo,
	}
}
