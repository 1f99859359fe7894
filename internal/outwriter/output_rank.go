package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs the ranked cities, dispatching based on the output format configured.
func WriteRankResults(results []schema.RankedCity, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankCSV(w, results, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available through the export command")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(results, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeRankTable generates and writes the human-readable ranking table.
func writeRankTable(results []schema.RankedCity, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, header(cfg, "🏙️", "City Rankings")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "City", "ST", "Total", "Label", "Clim", "Cost", "Demo", "QoL", "Cult", "Ent"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxNameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	excluded := 0
	for _, c := range results {
		rank := strconv.Itoa(c.Rank)
		label := labelFor(cfg, c.Total)
		if !c.Included {
			excluded++
			rank = "-"
			label = "EXCLUDED"
		}
		row := []string{
			rank,
			contract.TruncateName(c.Name, maxNameWidth),
			c.State,
			fmtFloat(c.Total),
			label,
			fmtFloat(c.Categories[schema.ClimateCategory]),
			fmtFloat(c.Categories[schema.CostCategory]),
			fmtFloat(c.Categories[schema.DemographicsCategory]),
			fmtFloat(c.Categories[schema.QualityOfLifeCategory]),
			fmtFloat(c.Categories[schema.CultureCategory]),
			fmtFloat(c.Categories[schema.EntertainmentCategory]),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d cities (%d excluded by filters)\n", len(results), excluded); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeRankCSV writes the ranked cities in CSV format.
func writeRankCSV(w io.Writer, results []schema.RankedCity, fmtFloat func(float64) string) error {
	headerRow := []string{
		"rank",
		"id",
		"city",
		"state",
		"total",
		"label",
		"climate",
		"cost",
		"demographics",
		"quality_of_life",
		"culture",
		"entertainment",
		"included",
		"exclusion_reason",
	}
	return writeCSVWithHeader(w, headerRow, func(csvWriter *csv.Writer) error {
		for _, c := range results {
			rec := []string{
				strconv.Itoa(c.Rank),
				c.ID,
				c.Name,
				c.State,
				fmtFloat(c.Total),
				contract.GetPlainLabel(c.Total),
				fmtFloat(c.Categories[schema.ClimateCategory]),
				fmtFloat(c.Categories[schema.CostCategory]),
				fmtFloat(c.Categories[schema.DemographicsCategory]),
				fmtFloat(c.Categories[schema.QualityOfLifeCategory]),
				fmtFloat(c.Categories[schema.CultureCategory]),
				fmtFloat(c.Categories[schema.EntertainmentCategory]),
				strconv.FormatBool(c.Included),
				c.ExclusionReason,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRankJSON writes the ranked cities in JSON format.
func writeRankJSON(w io.Writer, results []schema.RankedCity) error {
	// Prepare the data structure for JSON with label added
	type JSONRankedCity struct {
		Label string `json:"label"`
		schema.RankedCity
	}

	output := make([]JSONRankedCity, len(results))
	for i, c := range results {
		output[i] = JSONRankedCity{
			Label:      contract.GetPlainLabel(c.Total),
			RankedCity: c,
		}
	}

	return writeJSON(w, output)
}
