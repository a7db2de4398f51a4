package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/riskcheck-api/internal/dto"
	"github.com/noah-isme/riskcheck-api/internal/features"
	"github.com/noah-isme/riskcheck-api/internal/models"
	"github.com/noah-isme/riskcheck-api/internal/observability"
	"github.com/noah-isme/riskcheck-api/pkg/model"
)

// ErrClassifierFailed indicates the classifier rejected an aligned feature vector.
var ErrClassifierFailed = errors.New("classifier failed")

// Disclaimer accompanies every result.
const Disclaimer = "This assessment is a screening aid, not a diagnosis. If you are struggling, please reach out to a mental health professional or a local crisis line."

// AssessmentService runs one encode-and-classify cycle per submission.
type AssessmentService interface {
	Assess(ctx context.Context, req dto.AssessmentRequest) (dto.AssessmentResponse, error)
	Options() dto.FormOptions
}

type assessmentService struct {
	classifier model.Classifier
	schema     features.Schema
	validator  *validator.Validate
	logger     zerolog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewAssessmentService binds the classifier and its feature schema.
func NewAssessmentService(classifier model.Classifier, validator *validator.Validate, logger zerolog.Logger) (AssessmentService, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier must not be nil")
	}

	schema, err := features.NewSchema(classifier.FeatureNames())
	if err != nil {
		return nil, fmt.Errorf("classifier feature schema: %w", err)
	}

	return &assessmentService{
		classifier: classifier,
		schema:     schema,
		validator:  validator,
		logger:     logger.With().Str("component", "assessment_service").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/riskcheck-api/internal/service/assessment"),
		now:        time.Now,
	}, nil
}

func (s *assessmentService) Assess(ctx context.Context, req dto.AssessmentRequest) (dto.AssessmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.assess")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.Assessments().WithLabelValues("invalid").Inc()
		return dto.AssessmentResponse{}, err
	}

	input := req.ToModel()
	prediction, probability, err := s.classify(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inference failed")
		observability.Assessments().WithLabelValues("error").Inc()
		return dto.AssessmentResponse{}, err
	}

	verdict := models.VerdictLow
	if prediction == 1 {
		verdict = models.VerdictHigh
	}

	span.SetAttributes(
		attribute.String("assessment.verdict", string(verdict)),
		attribute.Float64("assessment.probability", probability),
	)
	span.SetStatus(codes.Ok, "assessed")
	observability.Assessments().WithLabelValues(string(verdict)).Inc()

	return dto.AssessmentResponse{
		Prediction:     prediction,
		Probability:    probability,
		RiskScore:      FormatRiskScore(probability),
		Verdict:        string(verdict),
		VerdictMessage: verdict.Message(),
		Factors:        dto.NewRiskFactorResponseSlice(RiskFactors(input)),
		Disclaimer:     Disclaimer,
	}, nil
}

func (s *assessmentService) classify(ctx context.Context, input models.Assessment) (int, float64, error) {
	_, span := s.tracer.Start(ctx, "assessment.classify")
	defer span.End()

	start := s.now()
	defer func() {
		observability.InferenceLatency().Observe(s.now().Sub(start).Seconds())
	}()

	vector, dropped := features.Build(input, s.schema)
	for _, name := range dropped {
		observability.UntrainedIndicators().WithLabelValues(name).Inc()
		s.logger.Warn().Str("feature", name).Msg("indicator not in trained schema, contributing zero")
	}
	span.SetAttributes(attribute.Int("features.count", s.schema.Len()))

	probability, err := s.classifier.PredictProbability(vector.Values)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrClassifierFailed, err)
	}

	prediction, err := s.classifier.Predict(vector.Values)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrClassifierFailed, err)
	}

	return prediction, probability, nil
}

// FormatRiskScore renders a probability as a percentage with two decimals, e.g. "73.00%".
func FormatRiskScore(probability float64) string {
	return fmt.Sprintf("%.2f%%", probability*100)
}
