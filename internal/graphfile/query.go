package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Query kinds.
const (
	KindPath   = "path"
	KindKPaths = "kpaths"
	KindRoute  = "route"
)

// ErrQuery indicates a query batch that decodes but fails validation.
var ErrQuery = errors.New("graphfile: invalid query")

// Query is one routing request of a batch.
//
// Kind selects the operation: "path" (single constrained path), "kpaths"
// (K alternatives, K ≥ 1 required) or "route" (through Via, in order).
// Budget may be .inf for an unconstrained query; an omitted budget is 0.
type Query struct {
	Name   string   `yaml:"name" json:"name" validate:"required"`
	Kind   string   `yaml:"kind" json:"kind" validate:"required,oneof=path kpaths route"`
	From   string   `yaml:"from" json:"from" validate:"required"`
	To     string   `yaml:"to" json:"to" validate:"required"`
	Via    []string `yaml:"via,omitempty" json:"via,omitempty" validate:"omitempty,dive,required"`
	Budget float64  `yaml:"budget" json:"budget" validate:"gte=0"`
	K      int      `yaml:"k,omitempty" json:"k,omitempty" validate:"gte=0"`
}

// Batch is the on-disk form of a query list.
type Batch struct {
	Queries []Query `yaml:"queries" json:"queries" validate:"required,min=1,unique=Name,dive"`
}

// queryValidate is the validator instance for batch documents.
var queryValidate *validator.Validate

func init() {
	queryValidate = validator.New()
	queryValidate.RegisterStructValidation(validateQueryKind, Query{})
}

// validateQueryKind enforces the rules that depend on Kind.
func validateQueryKind(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	if q.Kind == KindKPaths && q.K < 1 {
		sl.ReportError(q.K, "K", "k", "required_for_kpaths", "")
	}
	if q.Kind != KindRoute && len(q.Via) > 0 {
		sl.ReportError(q.Via, "Via", "via", "only_for_route", "")
	}
}

// Validate checks b against the batch rules.
func (b *Batch) Validate() error {
	if err := queryValidate.Struct(b); err != nil {
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return nil
}

// DecodeQueries reads and validates one batch document from r.
func DecodeQueries(r io.Reader) (*Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadQueries decodes the batch document stored at path.
func LoadQueries(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
