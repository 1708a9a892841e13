package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/application/dto"
	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
)

// Tree writes the indented hierarchy of the BOM.
func Tree(w io.Writer, node *bom.Node) error {
	_, err := io.WriteString(w, node.Tree())
	return err
}

// Parts writes the direct part children of a node, one line per
// declared row.
func Parts(w io.Writer, node *bom.Node) error {
	fmt.Fprintf(w, "%-15s %-25s %-10s\n", "Part Number", "Name", "QTY")
	fmt.Fprintf(w, "%-15s %-25s %-10s\n",
		"---------------", "-------------------------", "----------")

	for _, child := range node.Parts() {
		fmt.Fprintf(w, "%-15s %-25s %-10s\n",
			child.Part.PartNumber,
			child.Part.Name,
			child.Link.Quantity.String())
	}

	return nil
}

// Assemblies writes the direct sub-assembly children of a node, one
// line per declared row.
func Assemblies(w io.Writer, node *bom.Node) error {
	fmt.Fprintf(w, "%-15s %-25s %-10s\n", "Part Number", "Name", "QTY")
	fmt.Fprintf(w, "%-15s %-25s %-10s\n",
		"---------------", "-------------------------", "----------")

	for _, child := range node.Children {
		if child.IsPart() {
			continue
		}
		fmt.Fprintf(w, "%-15s %-25s %-10s\n",
			child.Node.PartNumber,
			itemName(child.Node.Item),
			child.Link.Quantity.String())
	}

	return nil
}

// Flat writes every part occurrence in the expanded BOM, depth first in
// declared order. Multi-use parts appear once per occurrence.
func Flat(w io.Writer, node *bom.Node) error {
	fmt.Fprintf(w, "%-15s %-25s %-15s\n", "Part Number", "Name", "Supplier")
	fmt.Fprintf(w, "%-15s %-25s %-15s\n",
		"---------------", "-------------------------", "---------------")

	for _, item := range node.Flat() {
		fmt.Fprintf(w, "%-15s %-25s %-15s\n",
			item.PartNumber, item.Name, item.Supplier)
	}

	return nil
}

// AggregateRow is one part number with its total required quantity
// across the whole tree.
type AggregateRow struct {
	PartNumber entities.PartNumber
	Name       string
	TotalQty   decimal.Decimal
}

// AggregateRows returns the aggregated totals in first-appearance
// order, so renderings are deterministic.
func AggregateRows(node *bom.Node) []AggregateRow {
	totals := node.Aggregate()
	seen := make(map[entities.PartNumber]bool)

	var rows []AggregateRow
	for _, item := range node.Flat() {
		if seen[item.PartNumber] {
			continue
		}
		seen[item.PartNumber] = true
		rows = append(rows, AggregateRow{
			PartNumber: item.PartNumber,
			Name:       item.Name,
			TotalQty:   totals[item.PartNumber],
		})
	}

	return rows
}

// Aggregate writes the aggregated quantities in the specified format
func Aggregate(w io.Writer, node *bom.Node, format string) error {
	rows := AggregateRows(node)

	switch format {
	case "text":
		fmt.Fprintf(w, "%-15s %-25s %-10s\n", "Part Number", "Name", "Total QTY")
		fmt.Fprintf(w, "%-15s %-25s %-10s\n",
			"---------------", "-------------------------", "----------")
		for _, row := range rows {
			fmt.Fprintf(w, "%-15s %-25s %-10s\n",
				row.PartNumber, row.Name, row.TotalQty.String())
		}
		return nil

	case "json":
		return writeJSON(w, rows)

	case "csv":
		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"PN", "Name", "Total QTY"}); err != nil {
			return err
		}
		for _, row := range rows {
			record := []string{string(row.PartNumber), row.Name, row.TotalQty.String()}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Summary writes the purchasing summary in the specified format
func Summary(w io.Writer, summary *dto.Summary, format string) error {
	switch format {
	case "text":
		return summaryText(w, summary)
	case "json":
		return writeJSON(w, summary)
	case "csv":
		return summaryCSV(w, summary)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func summaryText(w io.Writer, summary *dto.Summary) error {
	fmt.Fprintf(w, "📊 BOM Summary: %s\n", summary.RootPN)
	fmt.Fprintf(w, "==============================\n\n")

	fmt.Fprintf(w, "%-15s %-20s %-15s %-8s %-10s %-10s %-13s %-13s\n",
		"Part Number", "Name", "Supplier", "Pkg QTY", "Pkg Price",
		"Total QTY", "Purchase QTY", "Extended Cost")
	fmt.Fprintf(w, "%-15s %-20s %-15s %-8s %-10s %-10s %-13s %-13s\n",
		"---------------", "--------------------", "---------------", "--------",
		"----------", "----------", "-------------", "-------------")

	for _, row := range summary.Rows {
		fmt.Fprintf(w, "%-15s %-20s %-15s %-8d %-10s %-10s %-13s %-13s\n",
			row.PartNumber,
			row.Name,
			row.Supplier,
			row.PkgQty,
			row.PkgPrice.StringFixed(2),
			row.TotalQty.String(),
			row.PurchaseQty.String(),
			row.ExtendedCost.StringFixed(2))
	}

	fmt.Fprintf(w, "\nTotal Cost: %s\n", summary.TotalCost.StringFixed(2))
	return nil
}

func summaryCSV(w io.Writer, summary *dto.Summary) error {
	writer := csv.NewWriter(w)

	header := []string{"PN", "Name", "Description", "Supplier", "Supplier PN",
		"Pkg QTY", "Pkg Price", "Total QTY", "Purchase QTY", "Extended Cost"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range summary.Rows {
		record := []string{
			string(row.PartNumber),
			row.Name,
			row.Description,
			row.Supplier,
			row.SupplierPN,
			strconv.FormatInt(row.PkgQty, 10),
			row.PkgPrice.String(),
			row.TotalQty.String(),
			row.PurchaseQty.String(),
			row.ExtendedCost.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func itemName(item *entities.Item) string {
	if item == nil {
		return ""
	}
	return item.Name
}
