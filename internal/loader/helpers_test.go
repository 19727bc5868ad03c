package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shubhampawar16/synthea/internal/schema"
)

// csvLine renders one row in an entity's column order, quoting cells that
// contain commas.
func csvLine(e schema.EntitySpec, row map[string]string) string {
	cells := make([]string, 0, len(e.Fields))
	for _, col := range e.Columns() {
		cell := row[col]
		if strings.ContainsAny(cell, ",\"") {
			cell = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, ",")
}

// writeEntityFile writes one entity's CSV into dir with the full header row.
func writeEntityFile(t *testing.T, dir string, e schema.EntitySpec, rows []map[string]string) {
	t.Helper()

	lines := []string{strings.Join(e.Columns(), ",")}
	for _, row := range rows {
		lines = append(lines, csvLine(e, row))
	}

	path := filepath.Join(dir, e.File)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

// writeSourceDir materializes a complete source directory: every registered
// entity gets a CSV file, populated from rows where the label has data and
// header-only otherwise.
func writeSourceDir(t *testing.T, rows map[string][]map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for _, e := range schema.Entities {
		writeEntityFile(t, dir, e, rows[e.Label])
	}
	return dir
}

func patientRow(id string) map[string]string {
	return map[string]string{
		"Id":        id,
		"BIRTHDATE": "1980-01-01",
		"FIRST":     "Ada",
		"LAST":      "Lovelace",
		"GENDER":    "F",
		"LAT":       "42.36",
		"LON":       "-71.05",
		"INCOME":    "54000",
	}
}

func payerRow(id string) map[string]string {
	return map[string]string{
		"Id":   id,
		"NAME": "Payer " + id,
	}
}

func encounterRow(id, patientID string) map[string]string {
	return map[string]string{
		"Id":                  id,
		"START":               "2020-05-01T09:00:00Z",
		"PATIENT":             patientID,
		"ENCOUNTERCLASS":      "ambulatory",
		"CODE":                "185345009",
		"BASE_ENCOUNTER_COST": "129.16",
	}
}

func claimRow(id, patientID, primaryInsurance, secondaryInsurance string) map[string]string {
	return map[string]string{
		"Id":                          id,
		"PATIENTID":                   patientID,
		"PRIMARYPATIENTINSURANCEID":   primaryInsurance,
		"SECONDARYPATIENTINSURANCEID": secondaryInsurance,
		"DEPARTMENTID":                "12",
		"SERVICEDATE":                 "2020-05-01T09:00:00Z",
	}
}
