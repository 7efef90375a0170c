// Package render composites NC records into fixed-layout printable alert
// documents. Rendering is deterministic: identical inputs produce
// pixel-identical output.
package render

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"  // uploaded photo formats
	_ "image/jpeg" //
	_ "image/png"  //

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/model"
)

// Section band colors: warning red for NOT OK, affirmative green for OK.
var (
	notOKColor = [3]int{220, 0, 0}
	okColor    = [3]int{0, 150, 0}
)

// Renderer draws alert documents. Construct once at startup; safe to reuse
// across submissions (single submission in flight at a time).
type Renderer struct {
	alert  config.AlertConfig
	layout Layout
	fonts  FontSet
	logo   image.Image // nil when the logo asset is absent
}

// NewRenderer loads the rendering assets. Neither a missing typeface nor a
// missing logo is an error: the renderer degrades per asset.
func NewRenderer(alertCfg *config.AlertConfig, renderCfg *config.RenderConfig, logger *zap.Logger) *Renderer {
	r := &Renderer{
		alert:  *alertCfg,
		layout: NewLayout(),
		fonts:  LoadFonts(renderCfg.FontPath, logger),
	}

	if renderCfg.LogoPath != "" {
		logo, err := gg.LoadImage(renderCfg.LogoPath)
		if err != nil {
			logger.Warn("logo unavailable, header renders without it",
				zap.String("path", renderCfg.LogoPath),
				zap.Error(err),
			)
		} else {
			r.logo = resizeTo(logo, int(r.layout.Logo.W), int(r.layout.Logo.H))
		}
	}

	return r
}

// Decode parses uploaded photo bytes. A failure here is fatal for the
// submission: a corrupt photo must not produce a blank alert.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Render composites the alert document for rec. Either photo may be nil; the
// corresponding box stays empty.
func (r *Renderer) Render(rec *model.NCRecord, defect, ok image.Image) image.Image {
	l := r.layout
	dc := gg.NewContext(CanvasW, CanvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	// ── header ──
	if r.logo != nil {
		dc.DrawImage(r.logo, int(l.Logo.X), int(l.Logo.Y))
	}
	r.text(dc, r.fonts.Header, r.alert.Company, l.Company)
	r.text(dc, r.fonts.Title, "QUALITY ALERT", l.Title)

	// ── document-control bar ──
	r.box(dc, l.ControlBar)
	r.text(dc, r.fonts.Label, "Document No : "+r.alert.DocumentNo, l.DocNo)
	r.text(dc, r.fonts.Label, "Revision No : "+r.alert.RevisionNo, l.RevisionNo)
	r.text(dc, r.fonts.Label, "Issue Date : "+rec.Date, l.IssueDate)
	r.text(dc, r.fonts.Label, "NC No : "+rec.NCNo, l.NCNo)
	r.text(dc, r.fonts.Label, "Barcode No : "+rec.BarcodeNo, l.BarcodeNo)

	// ── traceability grid ──
	r.box(dc, l.Grid)
	left := [6][2]string{
		{"Customer", rec.Customer},
		{"Supplier", r.alert.Company},
		{"Part No", rec.PartNo},
		{"Description", rec.Description},
		{"Size", rec.Size},
		{"Grade", rec.Grade},
	}
	right := [6][2]string{
		{"Process Step", rec.Process},
		{"Machine No", rec.Machine},
		{"Operator", rec.Operator},
		{"Shift", rec.Shift},
		{"Defect", rec.Defect},
		{"Quantity", fmt.Sprintf("%d", rec.Qty)},
	}
	y := l.GridTopY
	for i := 0; i < 6; i++ {
		r.text(dc, r.fonts.Text, gridLine(left[i][0], left[i][1]), Point{X: l.LeftColX, Y: y})
		r.text(dc, r.fonts.Text, gridLine(right[i][0], right[i][1]), Point{X: l.RightColX, Y: y})
		y += l.RowGap
	}

	// ── photo section headers ──
	r.fill(dc, l.NotOKBand, notOKColor)
	r.fill(dc, l.OKBand, okColor)
	dc.SetRGB(1, 1, 1)
	r.text(dc, r.fonts.Header, "NOT OK", l.NotOKLabel)
	r.text(dc, r.fonts.Header, "OK", l.OKLabel)
	dc.SetRGB(0, 0, 0)

	// ── photo boxes ──
	r.box(dc, l.DefectBox)
	r.box(dc, l.OKBox)
	if defect != nil {
		dc.DrawImage(fitPhoto(defect), int(l.DefectAnchor.X), int(l.DefectAnchor.Y))
	}
	if ok != nil {
		dc.DrawImage(fitPhoto(ok), int(l.OKAnchor.X), int(l.OKAnchor.Y))
	}

	// ── signature bar ──
	r.box(dc, l.SignatureBar)
	r.text(dc, r.fonts.Label, "Prepared By : "+rec.PreparedBy, l.PreparedBy)
	r.text(dc, r.fonts.Label, "Approved By : "+r.alert.ApprovedBy, l.ApprovedBy)
	r.text(dc, r.fonts.Label, "Date : "+dateOnly(rec.Date), l.SignDate)

	return dc.Image()
}

// RenderToFile renders rec and writes the document to path as PNG.
// An existing file at path is overwritten.
func (r *Renderer) RenderToFile(rec *model.NCRecord, defect, ok image.Image, path string) error {
	img := r.Render(rec, defect, ok)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save alert document: %w", err)
	}
	return nil
}

// ── drawing helpers ──

// text draws s with its top-left corner anchored at p.
func (r *Renderer) text(dc *gg.Context, face font.Face, s string, p Point) {
	dc.SetFontFace(face)
	dc.DrawStringAnchored(s, p.X, p.Y, 0, 1)
}

// box strokes a 2px border around rect in the current color.
func (r *Renderer) box(dc *gg.Context, rect Rect) {
	dc.SetLineWidth(2)
	dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	dc.Stroke()
}

// fill paints rect solid.
func (r *Renderer) fill(dc *gg.Context, rect Rect, rgb [3]int) {
	dc.SetRGB255(rgb[0], rgb[1], rgb[2])
	dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	dc.Fill()
}

func gridLine(label, value string) string {
	return fmt.Sprintf("%-15s : %s", label, value)
}

// dateOnly strips the time portion of a record date (DateLayout).
func dateOnly(date string) string {
	if i := strings.IndexByte(date, ' '); i >= 0 {
		return date[:i]
	}
	return date
}

// fitPhoto scales img to fit within PhotoFitW×PhotoFitH preserving aspect
// ratio. Photos already inside the bound are left at native size.
func fitPhoto(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}
	scale := 1.0
	if s := float64(PhotoFitW) / float64(w); s < scale {
		scale = s
	}
	if s := float64(PhotoFitH) / float64(h); s < scale {
		scale = s
	}
	if scale >= 1.0 {
		return img
	}
	return resizeTo(img, int(float64(w)*scale), int(float64(h)*scale))
}

// resizeTo scales img to exactly w×h.
func resizeTo(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
