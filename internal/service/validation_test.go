package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/riskcheck-api/internal/dto"
	"github.com/noah-isme/riskcheck-api/internal/models"
)

func TestFieldErrorsUseJSONNames(t *testing.T) {
	req := validRequest()
	req.Age = intPtr(9)
	req.CGPA = floatPtr(11)
	req.SleepDuration = "Eight"

	errs := FieldErrors(NewValidator().Struct(req))
	require.Equal(t, map[string]string{
		"age":            "must be at least 13",
		"cgpa":           "must be at most 10",
		"sleep_duration": "must be one of: Less than 5 hours, 5-6 hours, 7-8 hours, More than 8 hours",
	}, errs)
}

func TestFieldErrorsReportMissingAnswers(t *testing.T) {
	req := validRequest()
	req.CGPA = nil
	req.WorkPressure = nil
	req.WorkStudyHours = nil

	errs := FieldErrors(NewValidator().Struct(req))
	require.Equal(t, map[string]string{
		"cgpa":             "is required",
		"work_pressure":    "is required",
		"work_study_hours": "is required",
	}, errs)
}

func TestZeroAnswersAreNotMissing(t *testing.T) {
	req := validRequest()
	req.CGPA = floatPtr(0)
	req.WorkPressure = intPtr(0)
	req.WorkStudyHours = intPtr(0)

	require.NoError(t, NewValidator().Struct(req))
}

func TestOptionTagFollowsDeclaredVariants(t *testing.T) {
	validate := NewValidator()

	cases := []struct {
		name   string
		mutate func(*dto.AssessmentRequest)
		field  string
		want   string
	}{
		{"gender", func(r *dto.AssessmentRequest) { r.Gender = "Other" }, "gender", "must be one of: Male, Female"},
		{"sleep", func(r *dto.AssessmentRequest) { r.SleepDuration = "Others" }, "sleep_duration", "must be one of: Less than 5 hours, 5-6 hours, 7-8 hours, More than 8 hours"},
		{"diet", func(r *dto.AssessmentRequest) { r.DietaryHabits = "Others" }, "dietary_habits", "must be one of: Healthy, Moderate, Unhealthy"},
		{"suicidal thoughts", func(r *dto.AssessmentRequest) { r.SuicidalThoughts = "yes" }, "suicidal_thoughts", "must be one of: No, Yes"},
		{"family history", func(r *dto.AssessmentRequest) { r.FamilyHistory = "Maybe" }, "family_history", "must be one of: No, Yes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			require.Equal(t, map[string]string{tc.field: tc.want}, FieldErrors(validate.Struct(req)))
		})
	}
}

func TestOptionTagAcceptsEveryDeclaredVariant(t *testing.T) {
	validate := NewValidator()
	req := validRequest()

	for _, g := range models.GenderOptions() {
		req.Gender = g
		require.NoError(t, validate.Struct(req), string(g))
	}
	for _, s := range models.SleepDurationOptions() {
		req.SleepDuration = s
		require.NoError(t, validate.Struct(req), string(s))
	}
	for _, d := range models.DietaryHabitOptions() {
		req.DietaryHabits = d
		require.NoError(t, validate.Struct(req), string(d))
	}
	for _, a := range models.AnswerOptions() {
		req.SuicidalThoughts = a
		req.FamilyHistory = a
		require.NoError(t, validate.Struct(req), string(a))
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	require.Nil(t, FieldErrors(errors.New("boom")))
	require.Nil(t, FieldErrors(nil))
}
