package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCompareResults outputs a two-city comparison, dispatching based on
// the output format configured.
func WriteCompareResults(result schema.ComparisonResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompareCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available through the export command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompareTable(w, result, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeCompareTable writes the human-readable comparison table.
func writeCompareTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	a, b := result.CityA, result.CityB
	title := fmt.Sprintf("%s, %s vs %s, %s", a.Name, a.State, b.Name, b.State)
	if _, err := fmt.Fprintln(w, header(cfg, "⚖️", title)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", a.Name, b.Name, "Delta", "Edge"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range result.Rows {
		edge := "even"
		switch {
		case row.Delta > 0:
			edge = b.Name
		case row.Delta < 0:
			edge = a.Name
		}
		data = append(data, []string{
			string(row.Category),
			fmtFloat(row.A),
			fmtFloat(row.B),
			signed(fmtFloat, row.Delta),
			edge,
		})
	}

	// Total row at the bottom
	totalDelta := b.Total - a.Total
	edge := "even"
	switch {
	case totalDelta > 0:
		edge = b.Name
	case totalDelta < 0:
		edge = a.Name
	}
	data = append(data, []string{
		"total",
		fmtFloat(a.Total),
		fmtFloat(b.Total),
		signed(fmtFloat, totalDelta),
		edge,
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, c := range []schema.CityScore{a, b} {
		if !c.Included {
			if _, err := fmt.Fprintf(w, "Note: %s is excluded by filter: %s\n", c.Name, c.ExclusionReason); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCompareCSV writes the comparison in CSV format.
func writeCompareCSV(w io.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	headerRow := []string{"category", "city_a", "city_b", "a", "b", "delta"}
	return writeCSVWithHeader(w, headerRow, func(csvWriter *csv.Writer) error {
		for _, row := range result.Rows {
			rec := []string{
				string(row.Category),
				result.CityA.ID,
				result.CityB.ID,
				fmtFloat(row.A),
				fmtFloat(row.B),
				fmtFloat(row.Delta),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		rec := []string{
			"total",
			result.CityA.ID,
			result.CityB.ID,
			fmtFloat(result.CityA.Total),
			fmtFloat(result.CityB.Total),
			fmtFloat(result.CityB.Total - result.CityA.Total),
		}
		return csvWriter.Write(rec)
	})
}
