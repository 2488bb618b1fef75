// internal/workers/report/deliver-report/models.go
package deliverreport

type Input struct {
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	TargetCareer string `json:"targetCareer"`
	Report       string `json:"report"`
}

// Delivery statuses.
const (
	StatusSent    = "sent"
	StatusPartial = "partial"
	StatusSkipped = "skipped"
)

type Output struct {
	EmailMessageID string `json:"emailMessageId,omitempty"`
	SMSMessageID   string `json:"smsMessageId,omitempty"`
	Status         string `json:"status"`
}
