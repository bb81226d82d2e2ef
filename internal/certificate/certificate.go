// Package certificate renders a printable PDF keepsake for a completed
// crossing.
package certificate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

// Record is what the certificate reports about a run.
type Record struct {
	Message    string // win message for the light tier
	Light      int
	MaxLight   int
	Riddles    int
	Answered   int
	Sacrificed int
	Tiles      int
	Date       time.Time
}

const (
	pageW  = 842.0 // A4 landscape, in points
	pageH  = 595.0
	margin = 36.0
)

// Render draws the certificate and returns the PDF bytes.
func Render(r Record) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Background and border
	pdf.SetFillColor(250, 240, 215)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetDrawColor(120, 60, 20)
	pdf.SetLineWidth(4)
	pdf.Rect(margin, margin, pageW-2*margin, pageH-2*margin, "D")
	pdf.SetLineWidth(1)
	pdf.Rect(margin+8, margin+8, pageW-2*margin-16, pageH-2*margin-16, "D")

	pdf.SetTextColor(90, 40, 10)
	pdf.SetFont("Times", "B", 36)
	pdf.SetXY(margin, margin+60)
	pdf.CellFormat(pageW-2*margin, 40, "The Riddle Bridge", "", 0, "C", false, 0, "")

	pdf.SetFont("Times", "I", 18)
	pdf.SetXY(margin, margin+110)
	pdf.CellFormat(pageW-2*margin, 24, "Certificate of Crossing", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(margin+40, margin+170)
	pdf.MultiCell(pageW-2*margin-80, 22, r.Message, "", "C", false)

	// Lava strip with one plank per riddle
	drawBridge(pdf, r)

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 30, 10)
	lines := []string{
		fmt.Sprintf("Light remaining: %d of %d", r.Light, r.MaxLight),
		fmt.Sprintf("Riddles answered: %d of %d", r.Answered, r.Riddles),
		fmt.Sprintf("Lights sacrificed: %d", r.Sacrificed),
		fmt.Sprintf("Tiles laid: %d", r.Tiles),
	}
	y := margin + 330.0
	for _, l := range lines {
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageW-2*margin, 18, l, "", 0, "C", false, 0, "")
		y += 20
	}

	if !r.Date.IsZero() {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(margin, pageH-margin-40)
		pdf.CellFormat(pageW-2*margin, 12, r.Date.Format("2 January 2006"), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawBridge(pdf *gofpdf.Fpdf, r Record) {
	segments := r.Riddles
	if segments < 1 {
		segments = 1
	}
	left := margin + 80
	width := pageW - 2*left
	seg := width / float64(segments)
	top := margin + 250.0

	pdf.SetFillColor(200, 50, 20)
	pdf.Rect(left, top+18, width, 14, "F")

	pdf.SetDrawColor(70, 40, 15)
	for i := 0; i < segments; i++ {
		if i < r.Tiles+1 {
			pdf.SetFillColor(150, 100, 50)
		} else {
			pdf.SetFillColor(110, 70, 35)
		}
		pdf.Rect(left+float64(i)*seg+2, top, seg-4, 14, "FD")
	}
}

// Write renders the certificate to w.
func Write(w io.Writer, r Record) error {
	data, err := Render(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile renders the certificate into dir and returns the file path.
func WriteFile(dir string, r Record) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create certificate dir: %w", err)
	}
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}
	path := filepath.Join(dir, fmt.Sprintf("riddle-bridge-%s.pdf", date.Format("20060102-150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write certificate: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
