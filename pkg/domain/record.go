package domain

import "fmt"

// Columns returns the canonical column header shared by every persisted table.
// The order is fixed and governs both Record.Row and the CSV files on disk.
func Columns() []string {
	return []string{
		"Company Name",
		"Vertical",
		"Money Raised",
		"CEO Email",
		"Location",
		"Employees",
		"Industry",
		"URL",
		"Description",
		"Email Reasoning",
		"Financials Reasoning",
	}
}

// Record is one flat row produced from a webset item. All fields are plain
// strings; absent values are represented by the empty string.
type Record struct {
	CompanyName         string
	Vertical            string
	MoneyRaised         string
	CEOEmail            string
	Location            string
	Employees           string
	Industry            string
	URL                 string
	Description         string
	EmailReasoning      string
	FinancialsReasoning string
}

// Row returns the record's values in the Columns order.
func (r Record) Row() []string {
	return []string{
		r.CompanyName,
		r.Vertical,
		r.MoneyRaised,
		r.CEOEmail,
		r.Location,
		r.Employees,
		r.Industry,
		r.URL,
		r.Description,
		r.EmailReasoning,
		r.FinancialsReasoning,
	}
}

// RecordFromRow converts a CSV row in the Columns order back into a Record.
// The row must have exactly one value per column.
func RecordFromRow(row []string) (Record, error) {
	if len(row) != len(Columns()) {
		return Record{}, fmt.Errorf("expected %d values, got %d", len(Columns()), len(row))
	}

	return Record{
		CompanyName:         row[0],
		Vertical:            row[1],
		MoneyRaised:         row[2],
		CEOEmail:            row[3],
		Location:            row[4],
		Employees:           row[5],
		Industry:            row[6],
		URL:                 row[7],
		Description:         row[8],
		EmailReasoning:      row[9],
		FinancialsReasoning: row[10],
	}, nil
}

// Table is an ordered collection of flat records sharing the fixed column set.
type Table []Record
