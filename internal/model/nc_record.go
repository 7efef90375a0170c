package model

// DateLayout is the timestamp format stored on every record (dd-mm-yyyy HH:MM).
const DateLayout = "02-01-2006 15:04"

// NCRecord is one quality non-conformance event. Records are created once per
// submission, appended to the register and never updated or deleted.
type NCRecord struct {
	Seq             int64   `gorm:"autoIncrement"                    json:"-"`
	NCNo            string  `gorm:"type:varchar(20);primaryKey"      json:"nc_no"`
	BarcodeNo       string  `gorm:"not null"                         json:"barcode_no"`
	Date            string  `gorm:"type:varchar(20);not null"        json:"date"` // DateLayout
	Customer        string  `json:"customer"`
	PartNo          string  `json:"part_no"`
	Description     string  `json:"description"`
	Size            string  `json:"size"`
	Grade           string  `json:"grade"`
	Process         string  `json:"process"`
	Machine         string  `json:"machine"`
	Operator        string  `json:"operator"`
	Shift           string  `json:"shift"`
	Qty             int     `gorm:"not null"                         json:"qty"`
	Defect          string  `json:"defect"`
	PreparedBy      string  `json:"prepared_by"`
	DefectImagePath string  `gorm:"not null"                         json:"defect_image_path"`
	OKImagePath     *string `json:"ok_image_path,omitempty"`
	AlertImagePath  string  `json:"alert_image_path"`
}

// TableName names the postgres table.
func (NCRecord) TableName() string { return "nc_records" }

// RegisterColumns is the register header row, in file order. The CSV store and
// the xlsx export both write exactly these columns.
var RegisterColumns = []string{
	"NC No",
	"Barcode No",
	"Date",
	"Customer",
	"Part No",
	"Description",
	"Size",
	"Grade",
	"Process",
	"Machine",
	"Operator",
	"Shift",
	"Qty",
	"Defect",
	"Prepared By",
	"Defect Image",
	"OK Image",
	"Alert Image",
}
