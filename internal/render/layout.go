package render

// The alert document geometry, expressed as data. Every region below is
// derived from the handful of constants at the top, so the layout can be
// checked without drawing anything.

const (
	// CanvasW and CanvasH are the fixed alert document dimensions.
	CanvasW = 1650
	CanvasH = 1150

	margin = 40

	logoW = 240
	logoH = 80

	controlBarH = 80
	gridH       = 320
	gridRowGap  = 45
	bandH       = 60
	photoBoxH   = 320
	signatureH  = 70

	// PhotoFitW and PhotoFitH bound the box uploaded photos are scaled
	// into (aspect preserved, shrink only).
	PhotoFitW = 700
	PhotoFitH = 300
)

// Point is a text anchor (top-left).
type Point struct {
	X, Y float64
}

// Rect is a drawable region.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Layout names every region of the alert document, top to bottom.
type Layout struct {
	Logo    Rect
	Company Point
	Title   Point

	ControlBar Rect
	DocNo      Point
	RevisionNo Point
	IssueDate  Point
	NCNo       Point
	BarcodeNo  Point

	Grid      Rect
	LeftColX  float64
	RightColX float64
	GridTopY  float64
	RowGap    float64

	NotOKBand  Rect
	OKBand     Rect
	NotOKLabel Point
	OKLabel    Point

	DefectBox    Rect
	OKBox        Rect
	DefectAnchor Point
	OKAnchor     Point

	SignatureBar Rect
	PreparedBy   Point
	ApprovedBy   Point
	SignDate     Point
}

// NewLayout computes the document layout from the constants above.
func NewLayout() Layout {
	var l Layout

	l.Logo = Rect{X: margin, Y: margin, W: logoW, H: logoH}
	l.Company = Point{X: margin + 300, Y: margin + 10}
	l.Title = Point{X: CanvasW/2 - 200, Y: margin + 90}

	y := float64(margin + 180)
	l.ControlBar = Rect{X: margin, Y: y, W: CanvasW - 2*margin, H: controlBarH}
	l.DocNo = Point{X: margin + 15, Y: y + 10}
	l.RevisionNo = Point{X: margin + 15, Y: y + 45}
	l.IssueDate = Point{X: CanvasW/2 - 150, Y: y + 10}
	l.NCNo = Point{X: CanvasW - 450, Y: y + 10}
	l.BarcodeNo = Point{X: CanvasW - 450, Y: y + 45}

	y += controlBarH + 20
	l.Grid = Rect{X: margin, Y: y, W: CanvasW - 2*margin, H: gridH}
	l.LeftColX = margin + 15
	l.RightColX = CanvasW/2 + 50
	l.GridTopY = y + 15
	l.RowGap = gridRowGap

	y += gridH + 40
	l.NotOKBand = Rect{X: margin, Y: y, W: CanvasW/2 - 10 - margin, H: bandH}
	l.OKBand = Rect{X: CanvasW/2 + 10, Y: y, W: CanvasW - margin - (CanvasW/2 + 10), H: bandH}
	l.NotOKLabel = Point{X: margin + 260, Y: y + 12}
	l.OKLabel = Point{X: CanvasW/2 + 260, Y: y + 12}

	y += bandH + 10
	l.DefectBox = Rect{X: margin, Y: y, W: CanvasW/2 - 10 - margin, H: photoBoxH}
	l.OKBox = Rect{X: CanvasW/2 + 10, Y: y, W: CanvasW - margin - (CanvasW/2 + 10), H: photoBoxH}
	l.DefectAnchor = Point{X: margin + 40, Y: y + 10}
	l.OKAnchor = Point{X: CanvasW/2 + 50, Y: y + 10}

	y += photoBoxH + 20
	// the bar's bottom edge lands 10px past CanvasH and is clipped; every
	// printed alert has this geometry, do not shrink it to fit
	l.SignatureBar = Rect{X: margin, Y: y, W: CanvasW - 2*margin, H: signatureH}
	l.PreparedBy = Point{X: margin + 15, Y: y + 20}
	l.ApprovedBy = Point{X: CanvasW/2 + 200, Y: y + 20}
	l.SignDate = Point{X: CanvasW - margin - 280, Y: y + 20}

	return l
}
