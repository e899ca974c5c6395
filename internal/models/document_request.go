package models

// Document request statuses
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusForPickup = "For Pickup"
	StatusCompleted = "Completed"
)

// DocumentStatuses lists the statuses the dashboard offers for requests
var DocumentStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusForPickup,
	StatusCompleted,
}

// DocumentTypes lists the documents the office issues
var DocumentTypes = []string{
	"Barangay Clearance",
	"Barangay Certificate",
	"Business Permit",
	"Residency Certificate",
	"Permit to Construct",
}

// DocumentRequest is a resident's request for an office-issued document
type DocumentRequest struct {
	ID                     int64  `gorm:"column:Id;primaryKey" json:"id"`
	RequestID              string `gorm:"column:RequestId;not null;uniqueIndex" json:"requestId"`
	Type                   string `gorm:"column:Type;not null" json:"type"`
	RequesterName          string `gorm:"column:RequesterName;not null" json:"requesterName"`
	DateFiled              Date   `gorm:"column:DateFiled;not null" json:"dateFiled"`
	Status                 string `gorm:"column:Status;not null" json:"status"`
	ContactNumber          string `gorm:"column:ContactNumber" json:"contactNumber"`
	Purpose                string `gorm:"column:Purpose" json:"purpose"`
	PickupDate             *Date  `gorm:"column:PickupDate" json:"pickupDate"`
	Copies                 int    `gorm:"column:Copies;not null" json:"copies"`
	AdditionalRequirements string `gorm:"column:AdditionalRequirements" json:"additionalRequirements"`
}

// TableName specifies the table name for DocumentRequest model
func (DocumentRequest) TableName() string {
	return "DocumentRequests"
}
