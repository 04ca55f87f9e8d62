package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
)

// GetDonation retrieves a donation from DynamoDB by its ID.
func (s *Store) GetDonation(ctx context.Context, donationID string) (*models.Donation, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": donationID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal donation ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.DonationsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get donation from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrDonationNotFound
	}

	var donation models.Donation
	if err := attributevalue.UnmarshalMap(result.Item, &donation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donation: %w", err)
	}

	return &donation, nil
}

const referenceIndex = "reference-index"

// GetDonationByReference retrieves a donation by its external gateway reference
// via the reference GSI. The reference column carries a uniqueness guarantee,
// so at most one item can match.
func (s *Store) GetDonationByReference(ctx context.Context, reference string) (*models.Donation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DonationsTableName),
		IndexName:              aws.String(referenceIndex),
		KeyConditionExpression: aws.String("#reference = :reference"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reference": &types.AttributeValueMemberS{Value: reference},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query donation by reference: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrDonationNotFound
	}

	var donation models.Donation
	if err := attributevalue.UnmarshalMap(result.Items[0], &donation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donation: %w", err)
	}

	return &donation, nil
}
