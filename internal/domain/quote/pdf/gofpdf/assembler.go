package gofpdf

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	realgofpdi "github.com/phpdave11/gofpdi"

	"shacman-mx/cotizador/internal/domain/quote"
)

// ISO A4 in points, and the layout constants of the summary page.
const (
	pageW = 595.28
	pageH = 841.89

	marginX    = 50.0
	lineHeight = 25.0

	maxSpecPages = 2
)

// Assembler builds quote documents with gofpdf, pulling the ficha técnica
// pages in through gofpdi.
type Assembler struct {
	specsDir string
	log      *slog.Logger
}

func New(specsDir string, log *slog.Logger) *Assembler {
	return &Assembler{specsDir: specsDir, log: log}
}

// Assemble copies up to the first two pages of the model's ficha técnica
// and appends the rendered summary page. A missing or unreadable ficha is
// not fatal; the document then starts directly with the summary.
func (a *Assembler) Assemble(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Cotización SHACMAN", true)
	pdf.SetAutoPageBreak(false, 0)

	a.importSpecPages(pdf, q.Model.SpecFile)
	a.drawSummaryPage(pdf, q)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "serialize quote pdf")
	}
	return buf.Bytes(), nil
}

// importSpecPages copies min(2, pageCount) pages of the ficha técnica into
// the document, each on a page of the source's own MediaBox size. gofpdi
// reports unreadable sources by panicking, so the stage runs under recover
// and degrades to a summary-only quote.
func (a *Assembler) importSpecPages(pdf *gofpdf.Fpdf, specFile string) {
	path := filepath.Join(a.specsDir, specFile)
	if _, err := os.Stat(path); err != nil {
		a.log.Warn("ficha técnica unavailable, quote will carry the summary page only",
			"file", path, "error", err)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("ficha técnica import failed, quote will carry the summary page only",
				"file", path, "reason", r)
		}
	}()

	src := realgofpdi.NewImporter()
	src.SetSourceFile(path)
	pages := src.GetNumPages()
	if pages > maxSpecPages {
		pages = maxSpecPages
	}

	imp := gofpdi.NewImporter()
	for pageNo := 1; pageNo <= pages; pageNo++ {
		tpl := imp.ImportPage(pdf, path, pageNo, "/MediaBox")

		w, h := pageW, pageH
		if box, ok := imp.GetPageSizes()[pageNo]["/MediaBox"]; ok && box["w"] > 0 && box["h"] > 0 {
			w, h = box["w"], box["h"]
		}
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
	}
}

type summaryRow struct {
	label    string
	value    string
	discount bool
	total    bool
}

func (a *Assembler) drawSummaryPage(pdf *gofpdf.Fpdf, q quote.Quote) {
	// Core Helvetica fonts are cp1252; the translator covers the Spanish
	// accents on the page.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(marginX, 80, tr("COTIZACIÓN SHACMAN MÉXICO"))

	pdf.SetDrawColor(51, 51, 51)
	pdf.SetLineWidth(2)
	pdf.Line(marginX, 100, pageW-marginX, 100)

	y := 140.0
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(marginX, y, tr("INFORMACIÓN DEL CLIENTE"))
	y += 30

	company := q.Company
	if company == "" {
		company = "N/A"
	}
	for _, row := range [][2]string{
		{"Vendedor:", q.Seller},
		{"Cliente:", q.Client},
		{"Empresa:", company},
	} {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(marginX, y, tr(row[0]))
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(150, y, tr(row[1]))
		y += lineHeight
	}

	y += 20
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(marginX, y, tr("INFORMACIÓN DEL VEHÍCULO"))
	y += 30

	t := q.Totals()
	rows := []summaryRow{
		{label: "Modelo:", value: q.Model.Name},
		{label: "Transmisión:", value: q.Transmission.Display()},
		{label: "Precio Unitario:", value: quote.FormatPrice(float64(q.Model.UnitPrice))},
		{label: "Cantidad:", value: q.UnitsLabel()},
		{label: "Subtotal:", value: quote.FormatPrice(t.Subtotal)},
	}
	if q.DiscountPercent > 0 {
		percent := strconv.FormatFloat(q.DiscountPercent, 'f', -1, 64)
		rows = append(rows, summaryRow{
			label:    "Descuento (" + percent + "%):",
			value:    "-" + quote.FormatPrice(t.DiscountAmount),
			discount: true,
		})
	}
	rows = append(rows, summaryRow{label: "TOTAL:", value: quote.FormatPrice(t.Total), total: true})

	for _, row := range rows {
		size := 12.0
		if row.total {
			size = 14
		}

		if row.discount {
			pdf.SetTextColor(204, 0, 0)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetFont("Helvetica", "B", size)
		pdf.Text(marginX, y, tr(row.label))

		switch {
		case row.total:
			pdf.SetTextColor(0, 153, 0)
		case row.discount:
			pdf.SetTextColor(204, 0, 0)
		default:
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", size)
		}
		pdf.Text(200, y, tr(row.value))

		if row.total {
			y += 30
		} else {
			y += lineHeight
		}
	}

	if q.Notes != "" {
		y += 20
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(marginX, y, tr("NOTAS ADICIONALES"))
		y += 30

		pdf.SetFont("Helvetica", "", 12)
		lines := wrapWords(q.Notes, pageW-2*marginX, func(s string) float64 {
			return pdf.GetStringWidth(tr(s))
		})
		for _, line := range lines {
			pdf.Text(marginX, y, tr(line))
			y += lineHeight
		}
	}

	// Footer sits at a fixed offset from the bottom edge no matter how
	// much content came before it.
	pdf.SetTextColor(127, 127, 127)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, pageH-50, tr("Fecha de cotización: "+q.CreatedAt.Format("2/1/2006")))
}
