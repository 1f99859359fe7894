package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteFactorDefinitions outputs the factor reference, dispatching based
// on the output format configured.
func WriteFactorDefinitions(defs []schema.FactorDefinition, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactorsCSV(w, defs, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available through the export command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactorsTable(w, defs, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeFactorsTable writes the human-readable factor reference, grouped
// by category.
func writeFactorsTable(w io.Writer, defs []schema.FactorDefinition, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w, header(cfg, "📖", "Factor Reference")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "All factor sub-scores are normalized to 0-100 before weighting"); err != nil {
		return err
	}

	for _, cat := range schema.AllCategories {
		var rows [][]string
		for _, d := range defs {
			if d.Category != cat {
				continue
			}
			rows = append(rows, []string{
				d.Name,
				d.Unit,
				fmtFloat(d.DomainMin),
				fmtFloat(d.DomainMax),
				d.Direction,
				d.Note,
			})
		}
		if len(rows) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", cat); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Factor", "Unit", "Min", "Max", "Direction", "Note"})
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	return nil
}

// writeFactorsCSV writes the factor reference in CSV format.
func writeFactorsCSV(w io.Writer, defs []schema.FactorDefinition, fmtFloat func(float64) string) error {
	headerRow := []string{"category", "factor", "unit", "domain_min", "domain_max", "direction", "note"}
	return writeCSVWithHeader(w, headerRow, func(csvWriter *csv.Writer) error {
		for _, d := range defs {
			rec := []string{
				string(d.Category),
				d.Name,
				d.Unit,
				fmtFloat(d.DomainMin),
				fmtFloat(d.DomainMax),
				d.Direction,
				d.Note,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
