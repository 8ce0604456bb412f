package harness

import (
	"github.com/roach88/crkortho/internal/transcode"
)

// Direction selects which conversions a case is checked with.
type Direction string

const (
	DirectionBoth           Direction = "both"
	DirectionSROToSyllabics Direction = "sro2syllabics"
	DirectionSyllabicsToSRO Direction = "syllabics2sro"
)

// Corpus is a named list of conversion cases.
type Corpus struct {
	// Name identifies the corpus and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the corpus covers.
	Description string `yaml:"description"`

	Cases []Case `yaml:"cases"`
}

// Case is an SRO text and the syllabics it corresponds to.
type Case struct {
	SRO       string `yaml:"sro"`
	Syllabics string `yaml:"syllabics"`

	// Direction defaults to both.
	Direction Direction `yaml:"direction,omitempty"`

	Sandhi  *bool   `yaml:"sandhi,omitempty"`
	Hyphens *string `yaml:"hyphens,omitempty"`
	Macrons *bool   `yaml:"macrons,omitempty"`
}

// EncodeOptions returns the options the SRO side is converted with.
func (c Case) EncodeOptions() transcode.EncodeOptions {
	opts := transcode.DefaultEncodeOptions()
	if c.Sandhi != nil {
		opts.Sandhi = *c.Sandhi
	}
	if c.Hyphens != nil {
		opts.Hyphens = *c.Hyphens
	}
	return opts
}

// DecodeOptions returns the options the syllabics side is converted with.
func (c Case) DecodeOptions() transcode.DecodeOptions {
	var opts transcode.DecodeOptions
	if c.Macrons != nil {
		opts.Macrons = *c.Macrons
	}
	return opts
}

// directions expands Direction into the conversions to check, in a fixed
// order.
func (c Case) directions() []Direction {
	switch c.Direction {
	case DirectionSROToSyllabics, DirectionSyllabicsToSRO:
		return []Direction{c.Direction}
	default:
		return []Direction{DirectionSROToSyllabics, DirectionSyllabicsToSRO}
	}
}

// Check is one conversion of one case.
type Check struct {
	Case      int       `json:"case"`
	Direction Direction `json:"direction"`
	Input     string    `json:"input"`
	Want      string    `json:"want"`
	Got       string    `json:"got"`
	Pass      bool      `json:"pass"`
}

// Result is the outcome of running a corpus.
type Result struct {
	Corpus string `json:"corpus"`

	// Pass is true if every check passed.
	Pass bool `json:"pass"`

	Checks []Check `json:"checks"`

	// Errors holds one message per failed check.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result for the named corpus.
func NewResult(corpus string) *Result {
	return &Result{
		Corpus: corpus,
		Pass:   true,
		Checks: []Check{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
