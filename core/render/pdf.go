// Package render provides output renderers for converted posts.
// This file implements the PDF renderer using gofpdf.
// It walks the rendered fragment block by block: headings (variable font
// sizes), paragraphs, lists, quotes, code blocks, rules and tables.
// Images are not embedded.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/blogpipe/core"
)

// PDFRenderer renders a post as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// pdfWriter couples a document with the cp1252 translator its core fonts need.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Render converts a post into PDF bytes.
func (r *PDFRenderer) Render(post *core.Post) ([]byte, error) {
	doc, err := parseFragment(post.HTML)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(post.Metadata.Title, true)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	w.header(post.Metadata)

	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		w.block(s)
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// header writes the title and the category/date line.
func (w *pdfWriter) header(meta core.Metadata) {
	if meta.Title != "" {
		w.pdf.SetFont("Helvetica", "B", 18)
		w.pdf.MultiCell(0, 8, w.tr(meta.Title), "", "L", false)
		w.pdf.Ln(4)
	}

	var info []string
	for _, v := range []string{meta.Category, meta.Date} {
		if v != "" {
			info = append(info, v)
		}
	}
	if len(info) > 0 {
		w.pdf.SetFont("Helvetica", "I", 9)
		w.pdf.SetTextColor(100, 100, 100)
		w.pdf.MultiCell(0, 5, w.tr(strings.Join(info, " | ")), "", "L", false)
		w.pdf.SetTextColor(0, 0, 0)
		w.pdf.Ln(6)
	}
}

func (w *pdfWriter) block(s *goquery.Selection) {
	switch name := goquery.NodeName(s); name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(name[1:])
		w.heading(collapse(s.Text()), level)
	case "ul", "ol":
		w.list(s, name == "ol")
	case "blockquote":
		w.quote(collapse(s.Text()))
	case "pre":
		w.code(s.Text())
	case "table":
		w.table(s)
	case "hr":
		w.rule()
	case "img", "script", "style":
	default:
		if s.HasClass("image-placeholder") {
			return
		}
		if text := collapse(s.Text()); text != "" {
			w.paragraph(text)
		}
	}
}

// heading sets the font size based on heading level and writes text.
func (w *pdfWriter) heading(text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", size)
	w.pdf.MultiCell(0, size*0.6, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}

func (w *pdfWriter) paragraph(text string) {
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
	w.pdf.Ln(3)
}

func (w *pdfWriter) list(s *goquery.Selection, ordered bool) {
	w.pdf.SetFont("Helvetica", "", 10)
	s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		marker := "• "
		if ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		w.pdf.MultiCell(0, 5, w.tr(marker+collapse(li.Text())), "", "L", false)
	})
	w.pdf.Ln(3)
}

func (w *pdfWriter) quote(text string) {
	left, _, _, _ := w.pdf.GetMargins()
	w.pdf.SetLeftMargin(left + 8)
	w.pdf.SetX(left + 8)
	w.pdf.SetFont("Helvetica", "I", 10)
	w.pdf.SetTextColor(80, 80, 80)
	w.pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetLeftMargin(left)
	w.pdf.Ln(3)
}

func (w *pdfWriter) code(text string) {
	w.pdf.Ln(2)
	w.pdf.SetFont("Courier", "", 9)
	w.pdf.SetFillColor(245, 245, 245)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		w.pdf.MultiCell(0, 4.5, w.tr(line), "", "L", true)
	}
	w.pdf.Ln(4)
}

func (w *pdfWriter) table(s *goquery.Selection) {
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		style := ""
		if tr.Find("th").Length() > 0 {
			style = "B"
		}
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapse(cell.Text()))
		})
		w.pdf.SetFont("Helvetica", style, 10)
		w.pdf.MultiCell(0, 5, w.tr(strings.Join(cells, " | ")), "B", "L", false)
	})
	w.pdf.Ln(4)
}

func (w *pdfWriter) rule() {
	left, _, right, _ := w.pdf.GetMargins()
	pageWidth, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY() + 2
	w.pdf.SetDrawColor(180, 180, 180)
	w.pdf.Line(left, y, pageWidth-right, y)
	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.Ln(6)
}

// collapse joins the words of text with single spaces.
func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
