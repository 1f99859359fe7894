package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteExplainResults outputs a single city's factor breakdown, dispatching
// based on the output format configured.
func WriteExplainResults(city *schema.CityScore, categories []schema.CategoryResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExplainJSON(w, city, categories)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExplainCSV(w, city, categories, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available through the export command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExplainText(w, city, categories, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeExplainText writes the human-readable per-factor breakdown.
func writeExplainText(w io.Writer, city *schema.CityScore, categories []schema.CategoryResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	title := fmt.Sprintf("%s, %s (total: %s, %s)", city.Name, city.State, fmtFloat(city.Total), contract.GetPlainLabel(city.Total))
	if _, err := fmt.Fprintln(w, header(cfg, "🔍", title)); err != nil {
		return err
	}
	if !city.Included {
		if _, err := fmt.Fprintf(w, "Excluded by filter: %s\n", city.ExclusionReason); err != nil {
			return err
		}
	}

	for _, cat := range categories {
		catTitle := fmt.Sprintf("%s: %s (%s)", cat.Category, fmtFloat(cat.Value), labelFor(cfg, cat.Value))
		if _, err := fmt.Fprintf(w, "\n%s\n", catTitle); err != nil {
			return err
		}
		if cat.Penalty > 0 {
			if _, err := fmt.Fprintf(w, "Penalty: -%s (%s)\n", fmtFloat(cat.Penalty), cat.PenaltyReason); err != nil {
				return err
			}
		}
		if len(cat.Factors) == 0 {
			if _, err := fmt.Fprintln(w, "No factors active (missing data or zero weights)"); err != nil {
				return err
			}
			continue
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Factor", "Score", "Weight", "Share", "Value", "Status", "Why"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, f := range cat.Factors {
			value := fmtFloat(f.Value)
			if f.Unit != "" {
				value += " " + f.Unit
			}
			row := []string{
				f.Name,
				fmtFloat(f.Score),
				strconv.Itoa(f.Weight),
				strconv.Itoa(f.WeightPct) + "%",
				value,
				string(f.Status),
				f.Explanation,
			}
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	return nil
}

// writeExplainCSV writes the per-factor breakdown in CSV format.
func writeExplainCSV(w io.Writer, city *schema.CityScore, categories []schema.CategoryResult, fmtFloat func(float64) string) error {
	headerRow := []string{
		"city_id",
		"category",
		"category_score",
		"factor",
		"score",
		"weight",
		"weight_pct",
		"value",
		"unit",
		"status",
		"explanation",
	}
	return writeCSVWithHeader(w, headerRow, func(csvWriter *csv.Writer) error {
		for _, cat := range categories {
			for _, f := range cat.Factors {
				rec := []string{
					city.ID,
					string(cat.Category),
					fmtFloat(cat.Value),
					f.Name,
					fmtFloat(f.Score),
					strconv.Itoa(f.Weight),
					strconv.Itoa(f.WeightPct),
					fmtFloat(f.Value),
					f.Unit,
					string(f.Status),
					f.Explanation,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeExplainJSON writes the per-factor breakdown in JSON format.
func writeExplainJSON(w io.Writer, city *schema.CityScore, categories []schema.CategoryResult) error {
	type JSONExplainResult struct {
		City       *schema.CityScore       `json:"city"`
		Label      string                  `json:"label"`
		Categories []schema.CategoryResult `json:"categories"`
	}

	output := JSONExplainResult{
		City:       city,
		Label:      contract.GetPlainLabel(city.Total),
		Categories: categories,
	}

	return writeJSON(w, output)
}
