package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// CreateDonation persists a new donation record in PENDING state.
func (s *Store) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	now := time.Now()
	donation.Id = uuid.New().String()
	donation.Status = models.PENDING
	donation.CreatedAt = now
	donation.UpdatedAt = now

	donationAV, err := attributevalue.MarshalMap(donation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal donation: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.DonationsTableName),
		Item:                donationAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to put donation: %w", err)
	}

	return donation, nil
}

// AttachReference stores the gateway transaction reference and raw gateway
// response on an existing donation.
func (s *Store) AttachReference(ctx context.Context, donationID, reference, metadata string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.DonationsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: donationID},
		},
		UpdateExpression:    aws.String("SET #reference = :reference, metadata = :metadata, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reference": &types.AttributeValueMemberS{Value: reference},
			":metadata":  &types.AttributeValueMemberS{Value: metadata},
			":now":       nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrDonationNotFound
		}
		return fmt.Errorf("failed to attach reference to donation %s: %w", donationID, err)
	}

	return nil
}

// MarkDonationCompleted atomically transitions a donation from PENDING to COMPLETED.
// The conditional expression is the idempotency guard for the whole payment
// lifecycle: the update succeeds at most once per donation, so only the caller
// that wins this write may apply the fund increment.
func (s *Store) MarkDonationCompleted(ctx context.Context, donationID, metadata string, completedAt time.Time) (bool, error) {
	completedAtAV, err := attributevalue.Marshal(completedAt)
	if err != nil {
		return false, fmt.Errorf("failed to marshal completion timestamp: %w", err)
	}

	return s.transitionDonation(ctx, donationID, models.COMPLETED, metadata, map[string]types.AttributeValue{
		":completed_at": completedAtAV,
	}, ", completed_at = :completed_at")
}

// MarkDonationFailed atomically transitions a donation from PENDING to FAILED.
func (s *Store) MarkDonationFailed(ctx context.Context, donationID, metadata string) (bool, error) {
	return s.transitionDonation(ctx, donationID, models.FAILED, metadata, nil, "")
}

// transitionDonation performs the guarded PENDING -> terminal state write.
// It returns false with a nil error when the condition fails, meaning the
// donation was already terminal and no effect was applied.
func (s *Store) transitionDonation(ctx context.Context, donationID string, status models.DonationStatus, metadata string, extraValues map[string]types.AttributeValue, extraExpr string) (bool, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	values := map[string]types.AttributeValue{
		":terminal_status": &types.AttributeValueMemberS{Value: string(status)},
		":pending_status":  &types.AttributeValueMemberS{Value: string(models.PENDING)},
		":metadata":        &types.AttributeValueMemberS{Value: metadata},
		":now":             nowAV,
	}
	for k, v := range extraValues {
		values[k] = v
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.DonationsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: donationID},
		},
		UpdateExpression:    aws.String("SET #status = :terminal_status, metadata = :metadata, updated_at = :now" + extraExpr),
		ConditionExpression: aws.String("#status = :pending_status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Another caller already moved the donation to a terminal state.
			return false, nil
		}
		return false, fmt.Errorf("failed to transition donation %s to %s: %w", donationID, status, err)
	}

	return true, nil
}
