package export

import (
	"encoding/csv"
	"io"
)

// WriteReportCSV serialises a tabular report to CSV: the data table first,
// then the summary as label/value pairs.
func WriteReportCSV(w io.Writer, report ReportData) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(report.Columns); err != nil {
		return err
	}
	record := make([]string, len(report.Columns))
	for _, row := range report.Rows {
		for i, col := range report.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	for _, item := range report.Summary {
		if err := writer.Write([]string{item.Label, item.Value}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
