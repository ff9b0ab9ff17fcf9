package core

// Flag is the two-state billing/transport marker used throughout the sheet.
// It is always exactly one of Yes ("Sim") or No ("Não"), never empty.
type Flag string

const (
	Yes Flag = "Sim"
	No  Flag = "Não"
)

// LabelNA is the sentinel for label fields whose column is missing.
const LabelNA = "N/A"

type (
	// Grid is the raw cell grid as delivered by a spreadsheet source:
	// first row of headers plus untyped string cells. It is consumed once
	// per fetch and never retained.
	Grid struct {
		Headers []string
		Rows    [][]string
	}

	// Record is one normalized extra-work expense row. Date, TimeIn and
	// TimeOut keep their raw string form; calendar and hour semantics are
	// resolved lazily by the parsers. A record has no identity beyond its
	// row position; duplicates are valid and all counted.
	Record struct {
		Date         string  `json:"data"`
		Value        float64 `json:"valor"`
		Collaborator string  `json:"colaborador"`
		Client       string  `json:"condominio"`
		Sector       string  `json:"setor"`
		Reason       string  `json:"motivo"`
		Billable     Flag    `json:"cobrar"`
		TimeIn       string  `json:"entrada"`
		TimeOut      string  `json:"saida"`
		Transport    Flag    `json:"conducao"`
	}
)
