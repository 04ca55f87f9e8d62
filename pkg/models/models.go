package models

import (
	"time"
)

// DonationStatus defines the possible states of a donation.
type DonationStatus string

const (
	PENDING   DonationStatus = "PENDING"
	COMPLETED DonationStatus = "COMPLETED"
	FAILED    DonationStatus = "FAILED"
)

// Terminal reports whether the status admits no further transition.
func (s DonationStatus) Terminal() bool {
	return s == COMPLETED || s == FAILED
}

// PaymentOutcome is the normalized result of a gateway status report.
type PaymentOutcome string

const (
	OutcomeComplete PaymentOutcome = "complete"
	OutcomeFailed   PaymentOutcome = "failed"
	OutcomeUnknown  PaymentOutcome = "unknown"
)

// Donation represents the internal domain model for a donation.
// Amount is in minor currency units (kobo/cents).
// It includes dynamodbav tags for marshalling.
type Donation struct {
	Id          string         `dynamodbav:"id"`
	UserId      string         `dynamodbav:"user_id"`
	FundId      string         `dynamodbav:"fund_id"`
	Amount      int64          `dynamodbav:"amount"`
	Currency    string         `dynamodbav:"currency"`
	Status      DonationStatus `dynamodbav:"status"`
	Reference   string         `dynamodbav:"reference,omitempty"`
	Metadata    string         `dynamodbav:"metadata,omitempty"`
	DonorEmail  string         `dynamodbav:"donor_email,omitempty"`
	DonorPhone  string         `dynamodbav:"donor_phone,omitempty"`
	Anonymous   bool           `dynamodbav:"anonymous"`
	Recurring   bool           `dynamodbav:"recurring"`
	CompletedAt *time.Time     `dynamodbav:"completed_at,omitempty"`
	CreatedAt   time.Time      `dynamodbav:"created_at"`
	UpdatedAt   time.Time      `dynamodbav:"updated_at"`
}

// FundStatus defines the possible states of a fund.
type FundStatus string

const (
	FundActive    FundStatus = "ACTIVE"
	FundCompleted FundStatus = "COMPLETED"
	FundClosed    FundStatus = "CLOSED"
)

// FundType distinguishes open-ended funds from capped campaigns.
type FundType string

const (
	FundTypeTithe    FundType = "TITHE"
	FundTypeOffering FundType = "OFFERING"
	FundTypeCampaign FundType = "CAMPAIGN"
)

// Fund represents the internal domain model for a collection fund.
// TargetAmount of 0 means the fund is open-ended.
type Fund struct {
	Id            string     `dynamodbav:"id"`
	Name          string     `dynamodbav:"name"`
	Description   string     `dynamodbav:"description,omitempty"`
	FundType      FundType   `dynamodbav:"fund_type"`
	TargetAmount  int64      `dynamodbav:"target_amount,omitempty"`
	CurrentAmount int64      `dynamodbav:"current_amount"`
	Currency      string     `dynamodbav:"currency"`
	Status        FundStatus `dynamodbav:"status"`
	CreatedAt     time.Time  `dynamodbav:"created_at"`
	UpdatedAt     time.Time  `dynamodbav:"updated_at"`
}
