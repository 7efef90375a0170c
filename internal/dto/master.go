package dto

// ── master-data DTOs ──

// PartDetailResponse is the part master row the form shows after a part is
// selected.
type PartDetailResponse struct {
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Grade       string `json:"grade"`
}

// NameListResponse wraps a selection list (customers, machines, operators,
// shifts, process steps).
type NameListResponse struct {
	List []string `json:"list"`
}
