package service

import (
	"strconv"

	"github.com/noah-isme/riskcheck-api/internal/dto"
	"github.com/noah-isme/riskcheck-api/internal/models"
)

func (s *assessmentService) Options() dto.FormOptions {
	return AssessmentForm()
}

// AssessmentForm describes the questionnaire controls, their ranges and defaults.
func AssessmentForm() dto.FormOptions {
	defaults := models.DefaultAssessment()

	return dto.FormOptions{
		Title:       "Student Mental Health Risk Assessment",
		Description: "Please fill out form below to get an assessment of your depression risk level.",
		Sections: []dto.FormSection{
			{
				Title: "Basic Information",
				Fields: []dto.FormField{
					slider("age", "Age", models.AgeRange, "", 0),
					choice("gender", "Gender", "select", stringsOf(models.GenderOptions()), string(defaults.Gender)),
				},
			},
			{
				Title: "Academic & Work Life",
				Fields: []dto.FormField{
					slider("cgpa", "Current CGPA", models.CGPARange, "", 2),
					slider("academic_pressure", "Academic Pressure", models.AcademicPressureRange,
						"On a scale of 0 (low) to 5 (high), the level of pressure you face in academic settings.", 0),
					slider("work_pressure", "Work Pressure", models.WorkPressureRange,
						"On a scale of 0 (low) to 5 (high), the pressure related to work or job responsibilities", 0),
					slider("study_satisfaction", "Study Satisfaction", models.StudySatisfactionRange,
						"On a scale of 0 (low) to 5 (high), how satisfied you are with your studies", 0),
					slider("job_satisfaction", "Job Satisfaction", models.JobSatisfactionRange,
						"On a scale of 0 (low) to 4 (high), how satisfied you are with your job or work environment", 0),
					slider("work_study_hours", "Work/Study Hours per Day", models.WorkStudyHoursRange,
						"Average number of hours spent on work or study each day", 0),
				},
			},
			{
				Title: "Lifestyle & Mental Health",
				Fields: []dto.FormField{
					choice("sleep_duration", "Average Sleep Duration", "select", stringsOf(models.SleepDurationOptions()), string(defaults.SleepDuration)),
					choice("dietary_habits", "Dietary Habits", "select", stringsOf(models.DietaryHabitOptions()), string(defaults.DietaryHabits)),
					slider("financial_stress", "Financial Stress", models.FinancialStressRange,
						"On a scale of 1 (low) to 5 (high), how much stress is experienced due to financial concerns", 0),
					choice("suicidal_thoughts", "History of Suicidal Thoughts?", "radio", stringsOf(models.AnswerOptions()), string(defaults.SuicidalThoughts)),
					choice("family_history", "Family History of Mental Illness?", "radio", stringsOf(models.AnswerOptions()), string(defaults.FamilyHistory)),
				},
			},
		},
	}
}

func slider(name, label string, r models.Range, help string, precision int) dto.FormField {
	lower, upper, step := r.Min, r.Max, r.Step
	return dto.FormField{
		Name:    name,
		Label:   label,
		Control: "slider",
		Min:     &lower,
		Max:     &upper,
		Step:    &step,
		Default: strconv.FormatFloat(r.Default, 'f', precision, 64),
		Help:    help,
	}
}

func choice(name, label, control string, options []string, def string) dto.FormField {
	return dto.FormField{
		Name:    name,
		Label:   label,
		Control: control,
		Default: def,
		Options: options,
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
