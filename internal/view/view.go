package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"github.com/noah-isme/riskcheck-api/internal/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// factorsPerColumn splits the detailed analysis into two columns.
const factorsPerColumn = 4

// Page is the data rendered by the questionnaire template.
type Page struct {
	AppName      string
	Form         dto.FormOptions
	Values       map[string]string
	Errors       map[string]string
	Result       *dto.AssessmentResponse
	LeftFactors  []dto.RiskFactorResponse
	RightFactors []dto.RiskFactorResponse
	Notice       template.HTML
	FormError    string
}

type fieldView struct {
	Field dto.FormField
	Value string
	Error string
}

func newFieldView(page Page, field dto.FormField) fieldView {
	return fieldView{
		Field: field,
		Value: page.Values[field.Name],
		Error: page.Errors[field.Name],
	}
}

// Renderer renders the questionnaire pages.
type Renderer struct {
	templates *template.Template
	notice    template.HTML
}

// NewRenderer parses the embedded templates. noticeHTML is operator supplied
// markup shown above the form; it is sanitised before use.
func NewRenderer(noticeHTML string) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"number":    formatNumber,
		"fieldData": newFieldView,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		templates: tmpl,
		notice:    template.HTML(bluemonday.UGCPolicy().Sanitize(noticeHTML)),
	}, nil
}

// Render writes the questionnaire page, including the result panel when present.
func (r *Renderer) Render(w io.Writer, page Page) error {
	page.Notice = r.notice
	values := DefaultValues(page.Form)
	for name, value := range page.Values {
		values[name] = value
	}
	page.Values = values
	if page.Result != nil {
		page.LeftFactors, page.RightFactors = splitFactors(page.Result.Factors)
	}
	return r.templates.ExecuteTemplate(w, "index.html", page)
}

// DefaultValues returns the initial control values of the form.
func DefaultValues(form dto.FormOptions) map[string]string {
	values := make(map[string]string)
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			values[field.Name] = field.Default
		}
	}
	return values
}

// ValuesFromRequest returns the control values carried by a submission.
// Omitted answers are left out so the form falls back to its defaults.
func ValuesFromRequest(req dto.AssessmentRequest) map[string]string {
	values := map[string]string{
		"gender":            string(req.Gender),
		"sleep_duration":    string(req.SleepDuration),
		"dietary_habits":    string(req.DietaryHabits),
		"suicidal_thoughts": string(req.SuicidalThoughts),
		"family_history":    string(req.FamilyHistory),
	}
	setInt(values, "age", req.Age)
	setInt(values, "academic_pressure", req.AcademicPressure)
	setInt(values, "work_pressure", req.WorkPressure)
	setInt(values, "study_satisfaction", req.StudySatisfaction)
	setInt(values, "job_satisfaction", req.JobSatisfaction)
	setInt(values, "work_study_hours", req.WorkStudyHours)
	setInt(values, "financial_stress", req.FinancialStress)
	if req.CGPA != nil {
		values["cgpa"] = strconv.FormatFloat(*req.CGPA, 'f', 2, 64)
	}
	for name, value := range values {
		if value == "" {
			delete(values, name)
		}
	}
	return values
}

func setInt(values map[string]string, name string, v *int) {
	if v != nil {
		values[name] = strconv.Itoa(*v)
	}
}

func splitFactors(factors []dto.RiskFactorResponse) ([]dto.RiskFactorResponse, []dto.RiskFactorResponse) {
	if len(factors) <= factorsPerColumn {
		return factors, nil
	}
	return factors[:factorsPerColumn], factors[factorsPerColumn:]
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
