package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shubhampawar16/synthea/internal/schema"
	"github.com/shubhampawar16/synthea/internal/types"
)

// ReadEntityFile reads one entity's CSV file into raw rows keyed by header
// name. Only columns the entity maps are retained; a column missing from the
// header, or a short row, yields an empty string for that cell, which the
// coercion layer turns into an empty property or a null numeric.
func ReadEntityFile(path string, e schema.EntitySpec) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(ErrCodeSourceUnreadable,
			fmt.Sprintf("%s: cannot open %s", e.Label, path), err)
	}
	defer f.Close()

	return readEntityRows(f, path, e)
}

func readEntityRows(r io.Reader, path string, e schema.EntitySpec) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows, treated as empty cells

	header, err := cr.Read()
	if err != nil {
		return nil, types.WrapError(ErrCodeSourceUnreadable,
			fmt.Sprintf("%s: cannot read header of %s", e.Label, path), err)
	}

	// Column name -> position in the record.
	position := make(map[string]int, len(header))
	for i, name := range header {
		position[name] = i
	}

	columns := e.Columns()

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.WrapError(ErrCodeSourceUnreadable,
				fmt.Sprintf("%s: malformed row %d in %s", e.Label, len(rows)+2, path), err)
		}

		row := make(map[string]string, len(columns))
		for _, col := range columns {
			idx, ok := position[col]
			if !ok || idx >= len(record) {
				row[col] = ""
				continue
			}
			row[col] = record[idx]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
