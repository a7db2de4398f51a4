package model

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	artifactSchemaURL = "artifact.schema.json"
	defaultThreshold  = 0.5
	maxArtifactBytes  = 64 << 20
)

var (
	// ErrUnsupportedArtifact indicates a file that is not a JSON model export,
	// e.g. a raw Python pickle.
	ErrUnsupportedArtifact = errors.New("unsupported model artifact")
	// ErrInvalidArtifact indicates a JSON export that does not describe a usable model.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

//go:embed artifact.schema.json
var artifactSchemaJSON []byte

var (
	compileOnce    sync.Once
	artifactSchema *jsonschema.Schema
	compileErr     error
)

type artifactDocument struct {
	FormatVersion int       `json:"format_version"`
	Kind          string    `json:"kind"`
	FeatureNames  []string  `json:"feature_names"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`
	Threshold     *float64  `json:"threshold"`
	Scaler        *struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Metadata Metadata `json:"metadata"`
}

// LoadFile reads a classifier artifact from disk.
func LoadFile(path string) (*LogisticRegression, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load decodes a classifier artifact. Gzip-compressed exports are accepted.
func Load(r io.Reader) (*LogisticRegression, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxArtifactBytes))
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnsupportedArtifact)
	}

	if mimetype.Detect(raw).Is("application/gzip") {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, err
		}
	}

	detected := mimetype.Detect(raw)
	if !isText(detected) {
		return nil, fmt.Errorf("%w: detected %s, expected a JSON export", ErrUnsupportedArtifact, detected.String())
	}
	// Text protocol pickles and other plain text sniff as text/plain.
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !startsJSONObject(raw) {
		return nil, fmt.Errorf("%w: detected %s without a JSON object, expected a JSON export", ErrUnsupportedArtifact, detected.String())
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc artifactDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	return newLogisticRegression(doc)
}

func newLogisticRegression(doc artifactDocument) (*LogisticRegression, error) {
	n := len(doc.FeatureNames)
	if len(doc.Coefficients) != n {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifact, len(doc.Coefficients), n)
	}

	model := &LogisticRegression{
		names:        append([]string(nil), doc.FeatureNames...),
		coefficients: append([]float64(nil), doc.Coefficients...),
		intercept:    doc.Intercept,
		threshold:    defaultThreshold,
		metadata:     doc.Metadata,
	}
	if doc.Threshold != nil {
		model.threshold = *doc.Threshold
	}

	if doc.Scaler != nil {
		if len(doc.Scaler.Mean) != n || len(doc.Scaler.Scale) != n {
			return nil, fmt.Errorf("%w: scaler dimensions do not match %d features", ErrInvalidArtifact, n)
		}
		for i, s := range doc.Scaler.Scale {
			if s == 0 || math.IsNaN(s) {
				return nil, fmt.Errorf("%w: scale for %q must be non-zero", ErrInvalidArtifact, doc.FeatureNames[i])
			}
		}
		model.mean = append([]float64(nil), doc.Scaler.Mean...)
		model.scale = append([]float64(nil), doc.Scaler.Scale...)
	}

	return model, nil
}

func validateDocument(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(artifactSchemaURL, bytes.NewReader(artifactSchemaJSON)); err != nil {
			compileErr = fmt.Errorf("load artifact schema: %w", err)
			return
		}
		artifactSchema, compileErr = compiler.Compile(artifactSchemaURL)
	})
	return artifactSchema, compileErr
}

func gunzip(raw []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedArtifact, err)
	}
	defer reader.Close()

	out, err := io.ReadAll(io.LimitReader(reader, maxArtifactBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedArtifact, err)
	}
	return out, nil
}

func isText(m *mimetype.MIME) bool {
	for current := m; current != nil; current = current.Parent() {
		if current.Is("text/plain") || current.Is("application/json") {
			return true
		}
	}
	return false
}

func startsJSONObject(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
