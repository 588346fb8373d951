// Package receipt renders printable order receipts.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"
)

const (
	pageBreakY   = 270.0
	maxNameChars = 60
)

var columnWidths = []float64{92, 20, 35, 35}

type pdfRenderer struct {
	brand string
	now   func() time.Time
}

// NewPDFRenderer renders A4 receipts headed with the given brand name.
func NewPDFRenderer(brand string) service.ReceiptRenderer {
	if brand == "" {
		brand = "Bazaar"
	}

	return &pdfRenderer{brand: brand, now: time.Now}
}

func (r *pdfRenderer) RenderReceipt(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, errors.New("order is required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetTitle(r.brand+" receipt "+orderNumber(order), true)
	pdf.SetCreationDate(r.now())
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(r.brand+" Receipt"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr("Order: "+orderNumber(order)))
	pdf.Ln(5)
	if order.StoreName != "" {
		pdf.Cell(0, 6, tr("Store: "+order.StoreName))
		pdf.Ln(5)
	}
	if !order.CreatedAt.IsZero() {
		pdf.Cell(0, 6, "Placed: "+order.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, "Status: "+strings.ToUpper(string(order.Status)))
	pdf.Ln(10)

	writeHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	var subtotal int64
	for _, item := range order.Items {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			writeHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}

		lineTotal := item.Total()
		subtotal += lineTotal

		pdf.CellFormat(columnWidths[0], 8, tr(trimTo(item.Name, maxNameChars)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[1], 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidths[2], 8, FormatMinor(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[3], 8, FormatMinor(lineTotal), "1", 1, "R", false, 0, "")
	}

	// The backend total wins; it may include shipping or discounts.
	total := order.Total
	if total == 0 {
		total = subtotal
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	label := "Total"
	if order.Currency != "" {
		label += " (" + order.Currency + ")"
	}
	pdf.CellFormat(columnWidths[0]+columnWidths[1]+columnWidths[2], 10, label, "1", 0, "R", true, 0, "")
	pdf.CellFormat(columnWidths[3], 10, FormatMinor(total), "1", 1, "R", true, 0, "")

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by "+tr(r.brand)+" - "+r.now().UTC().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf build failed")
	}

	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)

	pdf.CellFormat(columnWidths[0], 8, "ITEM", "1", 0, "L", true, 0, "")
	pdf.CellFormat(columnWidths[1], 8, "QTY", "1", 0, "C", true, 0, "")
	pdf.CellFormat(columnWidths[2], 8, "UNIT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(columnWidths[3], 8, "AMOUNT", "1", 1, "R", true, 0, "")
}

func orderNumber(order *entity.Order) string {
	if order.Number != "" {
		return order.Number
	}

	return order.ID
}

// FormatMinor formats minor currency units with two decimals and thousands separators.
func FormatMinor(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	return fmt.Sprintf("%s%s.%02d", sign, withCommas(n/100), n%100)
}

func withCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

func trimTo(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-3]) + "..."
}
