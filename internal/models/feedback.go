package models

// FeedbackTypeGeneral is stored when feedback arrives without a type
const FeedbackTypeGeneral = "General"

var FeedbackTypes = []string{"Suggestion", "Complaint", "Bug Report", "Other"}

// FeedbackRecord is a message left by a signed-in user. UserName is the
// display name at submission time, not a reference to Users.
type FeedbackRecord struct {
	ID        int64     `gorm:"column:Id;primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"column:Type;not null" json:"type"`
	Message   string    `gorm:"column:Message;not null" json:"message"`
	CreatedAt Timestamp `gorm:"column:CreatedAt;not null" json:"createdAt"`
	UserName  string    `gorm:"column:UserName" json:"userName"`
}

// TableName specifies the table name for FeedbackRecord model
func (FeedbackRecord) TableName() string {
	return "Feedbacks"
}
