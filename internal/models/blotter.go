package models

// Blotter statuses beyond the shared Pending
const (
	StatusUnderInvestigation = "Under Investigation"
	StatusSettled            = "Settled"
	StatusDismissed          = "Dismissed"
)

// Priority levels
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// ReportTypeOther is used when a report arrives without a type
const ReportTypeOther = "Other"

var BlotterStatuses = []string{StatusPending, StatusUnderInvestigation, StatusSettled, StatusDismissed}

var PriorityLevels = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

var ReportTypes = []string{
	"Theft",
	"Physical Injury",
	"Domestic Dispute",
	"Noise Complaint",
	"Vandalism",
	"Threat / Harassment",
	"Property Damage",
	ReportTypeOther,
}

// BlotterRecord is an incident entered in the barangay blotter
type BlotterRecord struct {
	ID               int64  `gorm:"column:Id;primaryKey" json:"id"`
	CaseNo           string `gorm:"column:CaseNo;not null;uniqueIndex" json:"caseNo"`
	ReportType       string `gorm:"column:ReportType;not null" json:"reportType"`
	PriorityLevel    string `gorm:"column:PriorityLevel;not null" json:"priorityLevel"`
	Barangay         string `gorm:"column:Barangay" json:"barangay"`
	Complainant      string `gorm:"column:Complainant" json:"complainant"`
	Respondent       string `gorm:"column:Respondent" json:"respondent"`
	IncidentDate     Date   `gorm:"column:IncidentDate;not null" json:"incidentDate"`
	IncidentLocation string `gorm:"column:IncidentLocation" json:"incidentLocation"`
	Description      string `gorm:"column:Description" json:"description"`
	Witnesses        string `gorm:"column:Witnesses" json:"witnesses"`
	Status           string `gorm:"column:Status;not null" json:"status"`
	DateReported     Date   `gorm:"column:DateReported;not null" json:"dateReported"`
}

// TableName specifies the table name for BlotterRecord model
func (BlotterRecord) TableName() string {
	return "BlotterReports"
}
