package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/riskcheck-api/internal/dto"
	"github.com/noah-isme/riskcheck-api/internal/models"
	"github.com/noah-isme/riskcheck-api/pkg/model"
)

type stubClassifier struct {
	names       []string
	class       int
	probability float64
	err         error
	lastVector  []float64
}

func (s *stubClassifier) FeatureNames() []string { return s.names }

func (s *stubClassifier) Predict(features []float64) (int, error) {
	s.lastVector = features
	if s.err != nil {
		return 0, s.err
	}
	return s.class, nil
}

func (s *stubClassifier) PredictProbability(features []float64) (float64, error) {
	s.lastVector = features
	if s.err != nil {
		return 0, s.err
	}
	return s.probability, nil
}

var _ model.Classifier = (*stubClassifier)(nil)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func validRequest() dto.AssessmentRequest {
	return dto.AssessmentRequest{
		Age:               intPtr(20),
		CGPA:              floatPtr(8.5),
		AcademicPressure:  intPtr(1),
		WorkPressure:      intPtr(0),
		StudySatisfaction: intPtr(5),
		JobSatisfaction:   intPtr(3),
		WorkStudyHours:    intPtr(4),
		FinancialStress:   intPtr(1),
		Gender:            models.GenderFemale,
		SleepDuration:     models.Sleep7To8,
		DietaryHabits:     models.DietHealthy,
		SuicidalThoughts:  models.AnswerNo,
		FamilyHistory:     models.AnswerNo,
	}
}

func newTestService(t *testing.T, classifier model.Classifier) AssessmentService {
	t.Helper()
	svc, err := NewAssessmentService(classifier, NewValidator(), testLogger())
	require.NoError(t, err)
	return svc
}

func TestAssessHighRiskPassThrough(t *testing.T) {
	classifier := &stubClassifier{
		names:       []string{"Age", "Academic Pressure", "Gender_Female", "Sleep Duration_Others"},
		class:       1,
		probability: 0.73,
	}
	svc := newTestService(t, classifier)

	resp, err := svc.Assess(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "73.00%", resp.RiskScore)
	require.Equal(t, 1, resp.Prediction)
	require.True(t, resp.HighRisk())
	require.Equal(t, "High Risk Detected, Depression", resp.VerdictMessage)
	require.Len(t, resp.Factors, 7)
	require.Equal(t, Disclaimer, resp.Disclaimer)

	require.Equal(t, []float64{20, 1, 1, 0}, classifier.lastVector)
}

func TestAssessLowRiskVerdict(t *testing.T) {
	classifier := &stubClassifier{names: []string{"Age"}, class: 0, probability: 0.1234}
	svc := newTestService(t, classifier)

	resp, err := svc.Assess(context.Background(), validRequest())
	require.NoError(t, err)
	require.False(t, resp.HighRisk())
	require.Equal(t, "low", resp.Verdict)
	require.Equal(t, "Low Risk Detected, No Depression", resp.VerdictMessage)
	require.Equal(t, "12.34%", resp.RiskScore)
}

func TestAssessRejectsOutOfRangeInput(t *testing.T) {
	classifier := &stubClassifier{names: []string{"Age"}}
	svc := newTestService(t, classifier)

	cases := map[string]func(*dto.AssessmentRequest){
		"age too low":       func(r *dto.AssessmentRequest) { r.Age = intPtr(12) },
		"cgpa too high":     func(r *dto.AssessmentRequest) { r.CGPA = floatPtr(10.01) },
		"pressure too high": func(r *dto.AssessmentRequest) { r.AcademicPressure = intPtr(6) },
		"job satisfaction":  func(r *dto.AssessmentRequest) { r.JobSatisfaction = intPtr(5) },
		"hours":             func(r *dto.AssessmentRequest) { r.WorkStudyHours = intPtr(13) },
		"financial stress":  func(r *dto.AssessmentRequest) { r.FinancialStress = intPtr(0) },
		"unknown gender":    func(r *dto.AssessmentRequest) { r.Gender = "Other" },
		"unknown sleep":     func(r *dto.AssessmentRequest) { r.SleepDuration = "Others" },
		"missing diet":      func(r *dto.AssessmentRequest) { r.DietaryHabits = "" },
		"missing cgpa":      func(r *dto.AssessmentRequest) { r.CGPA = nil },
		"missing hours":     func(r *dto.AssessmentRequest) { r.WorkStudyHours = nil },
		"bad answer":        func(r *dto.AssessmentRequest) { r.FamilyHistory = "Maybe" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)

			_, err := svc.Assess(context.Background(), req)
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
		})
	}
	require.Nil(t, classifier.lastVector)
}

func TestAssessAcceptsRangeEdges(t *testing.T) {
	svc := newTestService(t, &stubClassifier{names: []string{"Age"}, probability: 0.5})

	req := validRequest()
	req.Age = intPtr(100)
	req.CGPA = floatPtr(10)
	req.AcademicPressure = intPtr(5)
	req.WorkPressure = intPtr(5)
	req.JobSatisfaction = intPtr(4)
	req.WorkStudyHours = intPtr(12)
	req.FinancialStress = intPtr(5)
	req.SleepDuration = models.SleepMoreThan8
	_, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)
}

func TestAssessWrapsClassifierErrors(t *testing.T) {
	svc := newTestService(t, &stubClassifier{names: []string{"Age"}, err: errors.New("boom")})

	_, err := svc.Assess(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrClassifierFailed)
}

func TestNewAssessmentServiceRejectsBadSchema(t *testing.T) {
	_, err := NewAssessmentService(&stubClassifier{names: []string{"Age", "Age"}}, validator.New(), testLogger())
	require.Error(t, err)

	_, err = NewAssessmentService(nil, validator.New(), testLogger())
	require.Error(t, err)
}

func TestAssessWithBundledArtifact(t *testing.T) {
	classifier, err := model.LoadFile("../../models/student_depression_model.json")
	require.NoError(t, err)
	svc := newTestService(t, classifier)

	low, err := svc.Assess(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "low", low.Verdict)

	risky := validRequest()
	risky.AcademicPressure = intPtr(5)
	risky.StudySatisfaction = intPtr(1)
	risky.FinancialStress = intPtr(5)
	risky.WorkStudyHours = intPtr(12)
	risky.SleepDuration = models.SleepLessThan5
	risky.DietaryHabits = models.DietUnhealthy
	risky.SuicidalThoughts = models.AnswerYes
	risky.FamilyHistory = models.AnswerYes

	high, err := svc.Assess(context.Background(), risky)
	require.NoError(t, err)
	require.Equal(t, "high", high.Verdict)
	require.Greater(t, high.Probability, low.Probability)
}

func TestFormatRiskScore(t *testing.T) {
	require.Equal(t, "73.00%", FormatRiskScore(0.73))
	require.Equal(t, "0.00%", FormatRiskScore(0))
	require.Equal(t, "100.00%", FormatRiskScore(1))
	require.Equal(t, "5.68%", FormatRiskScore(0.05678))
}

func TestOptionsDescribeEveryField(t *testing.T) {
	svc := newTestService(t, &stubClassifier{names: []string{"Age"}})
	form := svc.Options()
	require.Len(t, form.Sections, 3)

	fields := map[string]dto.FormField{}
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			fields[field.Name] = field
		}
	}
	require.Len(t, fields, 13)
	require.Equal(t, "0.01", fields["cgpa"].Default)
	require.Equal(t, 100.0, *fields["age"].Max)
	require.Equal(t, 4.0, *fields["job_satisfaction"].Max)
	require.Equal(t, "1", fields["financial_stress"].Default)
	require.Equal(t, []string{"Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours"}, fields["sleep_duration"].Options)
	require.Equal(t, "radio", fields["family_history"].Control)
}
