package notify

// MessageType defines the type of an outbound notification message.
type MessageType string

const (
	// MessageTypeDonationConfirmed is for messages confirming a completed donation.
	MessageTypeDonationConfirmed MessageType = "donationConfirmed"
)

// Message represents a generic notification queue message.
type Message struct {
	Id      string      `json:"id"`
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// DonationConfirmation is the payload for a donationConfirmed message.
type DonationConfirmation struct {
	UserID     string `json:"user_id"`
	DonationID string `json:"donation_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	FundName   string `json:"fund_name"`
}
