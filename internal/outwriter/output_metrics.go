package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMetricDefinitions outputs the axis order, dispatching based on the output format configured.
func WriteMetricDefinitions(axis []schema.AxisInfo, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, axis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, axis)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for scores")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(w, axis)
		}, "Wrote table")
	}
}

// declaredText renders whether a metric came from the dataset definitions.
func declaredText(declared bool) string {
	if declared {
		return "yes"
	}
	return "no"
}

// writeMetricsTable writes the axis definitions as a table.
func writeMetricsTable(w io.Writer, axis []schema.AxisInfo) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Axis", "Metric", "Order", "Direction", "Unit", "Declared"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(axis))
	for i, a := range axis {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			a.Name,
			strconv.Itoa(a.Order),
			fmt.Sprintf("%s %s", a.Direction, a.Symbol),
			a.Unit,
			declaredText(a.Declared),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d metrics; %s = higher is better, %s = lower is better\n",
		len(axis), schema.Higher.Symbol(), schema.Lower.Symbol())
	return err
}

// writeMetricsCSV writes the axis definitions in CSV format.
func writeMetricsCSV(w io.Writer, axis []schema.AxisInfo) error {
	header := []string{"axis", "metric", "order", "direction", "symbol", "unit", "declared"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, a := range axis {
			rec := []string{
				strconv.Itoa(i + 1),
				a.Name,
				strconv.Itoa(a.Order),
				string(a.Direction),
				a.Symbol,
				a.Unit,
				strconv.FormatBool(a.Declared),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
