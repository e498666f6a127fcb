package launch

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ColumnFlightNumber is written by WriteCSV but never required on read.
const ColumnFlightNumber = "Flight Number"

// WriteCSV writes records in the layout ReadCSV accepts, numbering flights
// from 1 in slice order.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnFlightNumber, ColumnSite, ColumnClass, ColumnPayload, ColumnBoosterCategory}); err != nil {
		return err
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			r.Site,
			strconv.Itoa(r.Class),
			strconv.FormatFloat(r.PayloadMassKG, 'f', -1, 64),
			r.BoosterCategory,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
