package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/model"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	alertCfg := &config.AlertConfig{
		Company:    "GABRIL INDUSTRIES PVT. LTD.",
		DocumentNo: "GIPL-QA-001",
		RevisionNo: "00",
		ApprovedBy: "Varun K",
	}
	// no font or logo assets: embedded typeface, headless header
	renderCfg := &config.RenderConfig{}
	return NewRenderer(alertCfg, renderCfg, zap.NewNop())
}

func renderRecord() *model.NCRecord {
	return &model.NCRecord{
		NCNo:        "NC-2024-0001",
		BarcodeNo:   "BC-1001",
		Date:        "15-06-2024 10:30",
		Customer:    "ACME FORGE",
		PartNo:      "P-100",
		Description: "FLANGE 2IN",
		Size:        "2IN",
		Grade:       "SS304",
		Process:     "CNC TURNING",
		Machine:     "CNC-01",
		Operator:    "RAVI",
		Shift:       "A",
		Qty:         3,
		Defect:      "UNDERSIZE BORE",
		PreparedBy:  "QA-1",
	}
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestRenderCanvasSize(t *testing.T) {
	r := testRenderer(t)
	img := r.Render(renderRecord(), nil, nil)

	b := img.Bounds()
	if b.Dx() != CanvasW || b.Dy() != CanvasH {
		t.Errorf("canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), CanvasW, CanvasH)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := testRenderer(t)
	rec := renderRecord()
	defect := solidImage(80, 60, color.RGBA{R: 200, A: 255})

	first := encodePNG(t, r.Render(rec, defect, nil))
	second := encodePNG(t, r.Render(rec, defect, nil))
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same record differ")
	}
}

func TestRenderBandsPainted(t *testing.T) {
	r := testRenderer(t)
	img := r.Render(renderRecord(), nil, nil)
	l := r.layout

	// sample a point inside each band, away from the label text
	at := func(p Point) color.RGBA {
		c := img.At(int(p.X), int(p.Y))
		rr, g, b, a := c.RGBA()
		return color.RGBA{uint8(rr >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}

	red := at(Point{X: l.NotOKBand.X + 10, Y: l.NotOKBand.Y + 30})
	if red.R != 220 || red.G != 0 || red.B != 0 {
		t.Errorf("NOT OK band color = %v, want (220,0,0)", red)
	}
	green := at(Point{X: l.OKBand.X + 10, Y: l.OKBand.Y + 30})
	if green.R != 0 || green.G != 150 || green.B != 0 {
		t.Errorf("OK band color = %v, want (0,150,0)", green)
	}
}

func TestRenderToFile(t *testing.T) {
	r := testRenderer(t)
	path := filepath.Join(t.TempDir(), "NC-2024-0001.png")

	if err := r.RenderToFile(renderRecord(), nil, nil, path); err != nil {
		t.Fatalf("RenderToFile() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("alert document not written: %v", err)
	}
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("alert document is not a valid PNG: %v", err)
	}
	if cfgImg.Width != CanvasW || cfgImg.Height != CanvasH {
		t.Errorf("document = %dx%d, want %dx%d", cfgImg.Width, cfgImg.Height, CanvasW, CanvasH)
	}
}

func TestDecode(t *testing.T) {
	good := encodePNG(t, solidImage(4, 4, color.White))
	if _, err := Decode(good); err != nil {
		t.Errorf("Decode(valid png) error: %v", err)
	}
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode(garbage) succeeded, want error")
	}
}

func TestFitPhoto(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"small photo keeps native size", 400, 200, 400, 200},
		{"wide photo clamps to width", 1400, 300, 700, 150},
		{"tall photo clamps to height", 400, 600, 200, 300},
		{"oversized both ways", 2800, 1200, 700, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitPhoto(solidImage(tt.w, tt.h, color.White)).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("fitPhoto(%dx%d) = %dx%d, want %dx%d",
					tt.w, tt.h, got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGridLine(t *testing.T) {
	got := gridLine("Customer", "ACME")
	if got != "Customer        : ACME" {
		t.Errorf("gridLine() = %q", got)
	}
}

func TestDateOnly(t *testing.T) {
	if got := dateOnly("15-06-2024 10:30"); got != "15-06-2024" {
		t.Errorf("dateOnly() = %q, want 15-06-2024", got)
	}
	if got := dateOnly("15-06-2024"); got != "15-06-2024" {
		t.Errorf("dateOnly() without time = %q", got)
	}
}
