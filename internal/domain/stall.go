package domain

type StallStatus string

const (
	StallStatusDraft    StallStatus = "draft"
	StallStatusApproved StallStatus = "approved"
	StallStatusRejected StallStatus = "rejected"
)

// Stall is a physical umbrella-rental kiosk.
type Stall struct {
	ID            int32       `json:"id"`
	Name          string      `json:"name"`
	Code          string      `json:"code"`
	DeviceName    string      `json:"device_name"`
	Latitude      float64     `json:"latitude"`
	Longitude     float64     `json:"longitude"`
	UmbrellaCount int32       `json:"umbrella_count"`
	Status        StallStatus `json:"status"`
	CreatedOn     string      `json:"created_on"`
	UpdatedOn     string      `json:"updated_on"`
}
