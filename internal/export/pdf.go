package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"time"

	// Decoders for receipt thumbnail formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
)

// maxThumbnails bounds the size of the generated document, it is not a
// data model limit. Receipts past the cap are still listed in the table.
const maxThumbnails = 12

// ReportMeta carries the header information of a PDF report.
type ReportMeta struct {
	Title       string
	RangeLabel  string // optional, empty when no date filter is active
	GeneratedAt time.Time
}

var columnWidths = []float64{22, 38, 18, 30, 22, 60}

// WritePDF renders the rows as a formal report: title, optional range
// subtitle, generation timestamp, transaction table and up to
// maxThumbnails receipt image thumbnails. Rows are expected in
// chronological order.
func WritePDF(w io.Writer, rows []Row, meta ReportMeta) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, meta.Title, "", 1, "L", false, 0, "")

	if meta.RangeLabel != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, meta.RangeLabel, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Generated "+meta.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		// Repeat the table header after an automatic page break
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}

		cells := []string{
			row.Date.Format("2006-01-02"),
			row.Property,
			row.Type,
			row.Category,
			row.Amount.StringFixed(2),
			row.Description,
		}

		for i, cell := range cells {
			align := "L"
			if i == 4 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	writeThumbnails(pdf, rows)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error rendering PDF: %w", err)
	}

	return nil
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range Headers() {
		pdf.CellFormat(columnWidths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// writeThumbnails appends a receipts section with the first
// maxThumbnails image receipts in row order. A receipt that cannot be
// decoded is replaced with a placeholder line, the export continues.
func writeThumbnails(pdf *fpdf.Fpdf, rows []Row) {
	candidates := make([]Row, 0, maxThumbnails)
	for _, row := range rows {
		if !row.Receipt.Present() || !row.Receipt.IsImage() {
			continue
		}

		candidates = append(candidates, row)
		if len(candidates) == maxThumbnails {
			break
		}
	}

	if len(candidates) == 0 {
		return
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Receipts", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, row := range candidates {
		caption := fmt.Sprintf("%s - %s (%s)", row.Date.Format("2006-01-02"), row.Category, row.Amount.StringFixed(2))

		content, err := base64.StdEncoding.DecodeString(row.Receipt.Content)
		if err != nil {
			writePlaceholder(pdf, caption)
			continue
		}

		config, format, err := image.DecodeConfig(bytes.NewReader(content))
		if err != nil || config.Width == 0 {
			writePlaceholder(pdf, caption)
			continue
		}

		// Scale to a fixed thumbnail width, keeping the aspect ratio
		width := 60.0
		height := width * float64(config.Height) / float64(config.Width)

		if pdf.GetY()+height+12 > 282 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, caption, "", 1, "L", false, 0, "")

		name := fmt.Sprintf("receipt-%d", i)
		options := fpdf.ImageOptions{ImageType: format, ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(content))
		if pdf.Err() {
			// The format was readable by image but not by the renderer
			pdf.ClearError()
			writePlaceholder(pdf, caption)
			continue
		}

		pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), width, height, false, options, 0, "")
		pdf.SetY(pdf.GetY() + height + 4)
	}
}

func writePlaceholder(pdf *fpdf.Fpdf, caption string) {
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, caption+" - receipt could not be rendered", "", 1, "L", false, 0, "")
	pdf.Ln(2)
}
