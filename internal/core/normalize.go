package core

import "strings"

// Header keyword lists per canonical field. The first header (lowercased,
// trimmed) containing any of the field's keywords wins, scanning columns
// left to right. A field with no matching header is "absent" and every row
// gets that field's default.
var (
	dateKeywords         = []string{"data"}
	valueKeywords        = []string{"valor", "preço"}
	collaboratorKeywords = []string{"colaborador", "func", "nome"}
	clientKeywords       = []string{"condomínio", "cliente", "local"}
	sectorKeywords       = []string{"setor", "área"}
	reasonKeywords       = []string{"motivo", "descrição"}
	billableKeywords     = []string{"cobrar"}
	timeInKeywords       = []string{"entrada"}
	timeOutKeywords      = []string{"saída"}
	transportKeywords    = []string{"condução", "transporte"}
)

// columnMap holds the resolved column index per field, -1 when absent.
type columnMap struct {
	date, value, collaborator, client, sector int
	reason, billable, timeIn, timeOut         int
	transport                                 int
}

func resolveColumns(headers []string) columnMap {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}
	find := func(keywords []string) int {
		for i, h := range lowered {
			for _, kw := range keywords {
				if strings.Contains(h, kw) {
					return i
				}
			}
		}
		return -1
	}
	return columnMap{
		date:         find(dateKeywords),
		value:        find(valueKeywords),
		collaborator: find(collaboratorKeywords),
		client:       find(clientKeywords),
		sector:       find(sectorKeywords),
		reason:       find(reasonKeywords),
		billable:     find(billableKeywords),
		timeIn:       find(timeInKeywords),
		timeOut:      find(timeOutKeywords),
		transport:    find(transportKeywords),
	}
}

// cell returns the trimmed cell at idx, or "" when the row is short or the
// column absent. Short rows are common: trailing empty cells are dropped by
// the Sheets API.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Normalize converts a raw grid into canonical records. Row order is
// preserved (spreadsheet order is meaningful). An empty grid yields an
// empty slice, never an error; downstream aggregation handles zero rows.
func Normalize(g Grid) []Record {
	if len(g.Headers) == 0 {
		return []Record{}
	}
	cols := resolveColumns(g.Headers)
	out := make([]Record, 0, len(g.Rows))
	for _, row := range g.Rows {
		out = append(out, normalizeRow(row, cols))
	}
	return out
}

func normalizeRow(row []string, cols columnMap) Record {
	r := Record{
		Date:    cell(row, cols.date),
		TimeIn:  cell(row, cols.timeIn),
		TimeOut: cell(row, cols.timeOut),
	}
	if cols.value >= 0 {
		r.Value = ParseCurrency(cell(row, cols.value))
	}
	r.Collaborator = labelCell(row, cols.collaborator)
	r.Client = labelCell(row, cols.client)
	r.Sector = labelCell(row, cols.sector)
	r.Reason = labelCell(row, cols.reason)
	if cols.billable >= 0 {
		r.Billable = ParseFlag(cell(row, cols.billable))
	} else {
		r.Billable = No
	}
	if cols.transport >= 0 {
		r.Transport = ParseFlag(cell(row, cols.transport))
	} else {
		r.Transport = No
	}
	return r
}

// labelCell keeps the raw cell for present columns (empty cells stay empty
// so distinct-collaborator counts can skip them) and falls back to the N/A
// sentinel only when the whole column is absent.
func labelCell(row []string, idx int) string {
	if idx < 0 {
		return LabelNA
	}
	return cell(row, idx)
}
