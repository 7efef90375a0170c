package dto

// ── alert module DTOs ──

// SubmitAlertRequest is the multipart form the UI posts for one NC event.
// The photo parts (defect_image, ok_image) arrive as files next to these
// fields and are validated in the service. Qty carries no binding rule: the
// service range-checks it so a bad value gets its own error message instead
// of a generic form error.
type SubmitAlertRequest struct {
	Customer   string `form:"customer"    binding:"omitempty,max=100"`
	PartNo     string `form:"part_no"     binding:"omitempty,max=100"`
	Process    string `form:"process"     binding:"omitempty,max=100"`
	Machine    string `form:"machine"     binding:"omitempty,max=100"`
	Operator   string `form:"operator"    binding:"omitempty,max=100"`
	Shift      string `form:"shift"       binding:"omitempty,max=50"`
	Qty        int    `form:"qty"`
	BarcodeNo  string `form:"barcode_no"  binding:"omitempty,max=200"`
	Defect     string `form:"defect"      binding:"omitempty,max=500"`
	PreparedBy string `form:"prepared_by" binding:"omitempty,max=100"`
}

// SubmitAlertResponse is returned after a successful submission, suitable for
// immediate display and download of the rendered document.
type SubmitAlertResponse struct {
	NCNo           string `json:"nc_no"`
	AlertImagePath string `json:"alert_image_path"`
	AlertURL       string `json:"alert_url"`
}

// AlertListItem is one register row in the list response.
type AlertListItem struct {
	NCNo       string `json:"nc_no"`
	BarcodeNo  string `json:"barcode_no"`
	Date       string `json:"date"`
	Customer   string `json:"customer"`
	PartNo     string `json:"part_no"`
	Process    string `json:"process"`
	Defect     string `json:"defect"`
	Qty        int    `json:"qty"`
	PreparedBy string `json:"prepared_by"`
	AlertURL   string `json:"alert_url"`
}
