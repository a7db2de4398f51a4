package features

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/noah-isme/riskcheck-api/internal/models"
)

// ErrInvalidSchema is returned when a feature schema cannot be built.
var ErrInvalidSchema = errors.New("invalid feature schema")

// Record is a flat feature name to value mapping computed from one assessment.
type Record map[string]float64

// Vector is a record aligned to a schema: Names equals the schema order.
type Vector struct {
	Names  []string
	Values []float64
}

// Value returns the value stored for name and whether the name is part of the vector.
func (v Vector) Value(name string) (float64, bool) {
	for i, n := range v.Names {
		if n == name {
			return v.Values[i], true
		}
	}
	return 0, false
}

// Schema is the ordered list of feature names a classifier was trained on.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema validates and captures the ordered feature list.
func NewSchema(names []string) (Schema, error) {
	if len(names) == 0 {
		return Schema{}, fmt.Errorf("%w: no feature names", ErrInvalidSchema)
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return Schema{}, fmt.Errorf("%w: empty feature name at position %d", ErrInvalidSchema, i)
		}
		if _, exists := index[name]; exists {
			return Schema{}, fmt.Errorf("%w: duplicate feature %q", ErrInvalidSchema, name)
		}
		index[name] = i
	}

	copied := make([]string, len(names))
	copy(copied, names)

	return Schema{names: copied, index: index}, nil
}

// Names returns a copy of the ordered feature names.
func (s Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len is the number of features in the schema.
func (s Schema) Len() int {
	return len(s.names)
}

// Has reports whether name is a trained feature.
func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Align reindexes the record against the schema. Names missing from the
// record are filled with zero and computed columns unknown to the schema are
// dropped. The second return value lists the active indicators (non-zero
// values) that were dropped, sorted by name.
func (s Schema) Align(record Record) (Vector, []string) {
	values := make([]float64, s.Len())
	for i, name := range s.names {
		values[i] = record[name]
	}

	var dropped []string
	for name, value := range record {
		if value == 0 {
			continue
		}
		if !s.Has(name) {
			dropped = append(dropped, name)
		}
	}
	sort.Strings(dropped)

	return Vector{Names: s.Names(), Values: values}, dropped
}

// IndicatorName builds the one-hot column name for a categorical value.
func IndicatorName(column, value string) string {
	return column + "_" + value
}

// Encode flattens the assessment and expands every categorical field into
// one indicator per declared option.
func Encode(input models.Assessment) Record {
	record := Record{
		models.ColumnAge:               float64(input.Age),
		models.ColumnAcademicPressure:  float64(input.AcademicPressure),
		models.ColumnWorkPressure:      float64(input.WorkPressure),
		models.ColumnCGPA:              input.CGPA,
		models.ColumnStudySatisfaction: float64(input.StudySatisfaction),
		models.ColumnJobSatisfaction:   float64(input.JobSatisfaction),
		models.ColumnWorkStudyHours:    float64(input.WorkStudyHours),
		models.ColumnFinancialStress:   float64(input.FinancialStress),
	}

	oneHot(record, models.ColumnGender, string(input.Gender), optionStrings(models.GenderOptions()))
	oneHot(record, models.ColumnSleepDuration, string(input.SleepDuration), optionStrings(models.SleepDurationOptions()))
	oneHot(record, models.ColumnDietaryHabits, string(input.DietaryHabits), optionStrings(models.DietaryHabitOptions()))
	oneHot(record, models.ColumnSuicidalThoughts, string(input.SuicidalThoughts), optionStrings(models.AnswerOptions()))
	oneHot(record, models.ColumnFamilyHistory, string(input.FamilyHistory), optionStrings(models.AnswerOptions()))

	return record
}

// Build encodes the assessment and aligns it to the schema in one step.
func Build(input models.Assessment, schema Schema) (Vector, []string) {
	return schema.Align(Encode(input))
}

func oneHot(record Record, column, selected string, options []string) {
	for _, option := range options {
		value := 0.0
		if option == selected {
			value = 1
		}
		record[IndicatorName(column, option)] = value
	}
}

func optionStrings[T ~string](options []T) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		out = append(out, string(option))
	}
	return out
}
