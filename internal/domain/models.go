package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the portal.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CheckRecord is one persisted compliance check. Extracted field values are
// empty strings when the label did not declare them.
type CheckRecord struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           uuid.UUID  `db:"user_id" json:"user_id"`
	Username         string     `db:"username" json:"username"`
	SourceType       SourceType `db:"source_type" json:"source_type"`
	RawText          string     `db:"raw_text" json:"raw_text"`
	ProductName      string     `db:"product_name" json:"product_name"`
	NetWeight        string     `db:"net_weight" json:"net_weight"`
	MRP              string     `db:"mrp" json:"mrp"`
	TaxesIncluded    bool       `db:"inclusive_of_all_taxes" json:"inclusive_of_all_taxes"`
	MfgDate          string     `db:"mfg_date" json:"mfg_date"`
	CountryOfOrigin  string     `db:"country_of_origin" json:"country_of_origin"`
	Manufacturer     string     `db:"manufacturer" json:"manufacturer"`
	ComplianceStatus string     `db:"compliance_status" json:"compliance_status"`
	ImageS3Key       string     `db:"image_s3_key" json:"image_s3_key,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// Sentinel values a barcode lookup uses for fields it does not know.
// NotAvailableAPI marks fields the public API never reports at all.
const (
	NotAvailable    = "N/A"
	NotAvailableAPI = "N/A (API)"
)

// BarcodeProduct is the structured product data returned by a barcode lookup.
// Unknown fields carry NotAvailable or NotAvailableAPI rather than empty strings.
type BarcodeProduct struct {
	Barcode      string `json:"barcode"`
	ProductName  string `json:"product_name"`
	Brand        string `json:"brand"`
	NetWeight    string `json:"net_weight"`
	MRP          string `json:"mrp"`
	MfgDate      string `json:"mfg_date"`
	Country      string `json:"country"`
	Manufacturer string `json:"manufacturer"`
	Source       string `json:"source"`
}

// Complaint is a consumer complaint filed against a checked product.
type Complaint struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	UserID            uuid.UUID       `db:"user_id" json:"user_id"`
	Username          string          `db:"username" json:"username"`
	ProductName       string          `db:"product_name" json:"product_name"`
	MRP               string          `db:"mrp" json:"mrp"`
	NetQuantity       string          `db:"net_quantity" json:"net_quantity"`
	PurchasedPlatform string          `db:"purchased_platform" json:"purchased_platform"`
	DateOfOrder       string          `db:"date_of_order" json:"date_of_order"`
	DateOfDelivery    string          `db:"date_of_delivery" json:"date_of_delivery"`
	IssueDescription  string          `db:"issue_description" json:"issue_description"`
	Status            ComplaintStatus `db:"status" json:"status"`
	FiledAt           time.Time       `db:"filed_at" json:"filed_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}
