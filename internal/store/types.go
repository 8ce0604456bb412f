package store

// Direction names a conversion direction as stored in the journal.
type Direction string

const (
	DirectionSROToSyllabics Direction = "sro2syllabics"
	DirectionSyllabicsToSRO Direction = "syllabics2sro"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionSROToSyllabics || d == DirectionSyllabicsToSRO
}

// Options are the conversion settings a line was converted with.
// Hyphens and Sandhi apply to sro2syllabics, Macrons to syllabics2sro.
type Options struct {
	Hyphens string `json:"hyphens"`
	Sandhi  bool   `json:"sandhi"`
	Macrons bool   `json:"macrons"`
}

// Conversion is one journalled line.
type Conversion struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Seq       int64     `json:"seq"`
	Direction Direction `json:"direction"`
	Options   Options   `json:"options"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
}

// Session summarises one journalled run.
type Session struct {
	Token       string `json:"token"`
	Conversions int    `json:"conversions"`
	FirstSeq    int64  `json:"first_seq"`
	LastSeq     int64  `json:"last_seq"`
}
