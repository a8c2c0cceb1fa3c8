package x_txn

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// CSVReader reads one transaction per record. Records may have any number
// of fields; blank cells are dropped.
type CSVReader struct {
	Delimiter rune
	Comment   rune
}

func (c *CSVReader) Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	if c.Delimiter != 0 {
		cr.Comma = c.Delimiter
	}
	cr.Comment = c.Comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var txns [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return txns, nil
		}
		if err != nil {
			return nil, err
		}

		txn := make([]string, 0, len(rec))
		for _, cell := range rec {
			if cell = strings.TrimSpace(cell); cell != "" {
				txn = append(txn, cell)
			}
		}
		txns = append(txns, txn)
	}
}
