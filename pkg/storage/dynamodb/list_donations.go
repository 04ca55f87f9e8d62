package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
)

const (
	stalePendingGSI = "status-created_at-index"
	userIDIndex     = "user_id-index"
)

// GetStalePendingDonations retrieves donations stuck in PENDING for longer than
// maxAge. These are candidates for manual verification against the gateway,
// covering lost webhooks.
func (s *Store) GetStalePendingDonations(ctx context.Context, maxAge time.Duration) ([]models.Donation, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DonationsTableName),
		IndexName:              aws.String(stalePendingGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale pending donations: %w", err)
	}

	var donations []models.Donation
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &donations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale pending donations: %w", err)
	}

	return donations, nil
}

// ListDonationsByUserID retrieves all donations made by a specific user.
func (s *Store) ListDonationsByUserID(ctx context.Context, userID string) ([]models.Donation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DonationsTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations for user %s: %w", userID, err)
	}

	var donations []models.Donation
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &donations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donations: %w", err)
	}

	return donations, nil
}
