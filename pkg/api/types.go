// Package api contains the wire-level request and response types for the
// donations HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DonationStatus defines the externally visible states of a donation.
type DonationStatus string

const (
	PENDING   DonationStatus = "PENDING"
	COMPLETED DonationStatus = "COMPLETED"
	FAILED    DonationStatus = "FAILED"
)

// NewDonation is the request body for creating a donation.
type NewDonation struct {
	FundId     string               `json:"fund_id"`
	UserId     string               `json:"user_id"`
	Amount     int64                `json:"amount"`
	Currency   string               `json:"currency,omitempty"`
	DonorEmail *openapi_types.Email `json:"donor_email,omitempty"`
	DonorPhone *string              `json:"donor_phone,omitempty"`
	Anonymous  bool                 `json:"anonymous,omitempty"`
	Recurring  bool                 `json:"recurring,omitempty"`
}

// DonationCreated is the response to a successful donation creation.
type DonationCreated struct {
	DonationId openapi_types.UUID `json:"donation_id"`
	PaymentUrl string             `json:"payment_url"`
}

// Donation is the API representation of a donation record.
type Donation struct {
	Id          openapi_types.UUID `json:"id"`
	UserId      string             `json:"user_id"`
	FundId      string             `json:"fund_id"`
	Amount      int64              `json:"amount"`
	Currency    string             `json:"currency"`
	Status      DonationStatus     `json:"status"`
	Reference   string             `json:"reference,omitempty"`
	Anonymous   bool               `json:"anonymous"`
	Recurring   bool               `json:"recurring"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// FundStatus defines the externally visible states of a fund.
type FundStatus string

const (
	FundActive    FundStatus = "ACTIVE"
	FundCompleted FundStatus = "COMPLETED"
	FundClosed    FundStatus = "CLOSED"
)

// NewFund is the request body for creating a fund.
type NewFund struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	FundType     string `json:"fund_type"`
	TargetAmount int64  `json:"target_amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// Fund is the API representation of a fund.
type Fund struct {
	Id            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	FundType      string     `json:"fund_type"`
	TargetAmount  int64      `json:"target_amount,omitempty"`
	CurrentAmount int64      `json:"current_amount"`
	Currency      string     `json:"currency"`
	Status        FundStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Error is the generic error response body.
type Error struct {
	Error string `json:"error"`
}
