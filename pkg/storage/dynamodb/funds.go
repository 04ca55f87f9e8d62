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

// GetFund retrieves a fund from DynamoDB by its ID.
func (s *Store) GetFund(ctx context.Context, fundID string) (*models.Fund, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": fundID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fund ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.FundsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrFundNotFound
	}

	var fund models.Fund
	if err := attributevalue.UnmarshalMap(result.Item, &fund); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fund: %w", err)
	}

	return &fund, nil
}

// CreateFund creates a new fund in ACTIVE state.
func (s *Store) CreateFund(ctx context.Context, fund *models.Fund) (*models.Fund, error) {
	now := time.Now()
	if fund.Id == "" {
		fund.Id = uuid.New().String()
	}
	fund.Status = models.FundActive
	fund.CurrentAmount = 0
	fund.CreatedAt = now
	fund.UpdatedAt = now

	fundAV, err := attributevalue.MarshalMap(fund)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fund: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.FundsTableName),
		Item:                fundAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrFundAlreadyExists
		}
		return nil, fmt.Errorf("failed to put fund: %w", err)
	}

	return fund, nil
}

// ListFunds retrieves all funds from the storage.
func (s *Store) ListFunds(ctx context.Context) ([]models.Fund, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.FundsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan funds: %w", err)
	}

	var funds []models.Fund
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &funds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal funds: %w", err)
	}

	return funds, nil
}

// IncrementFundAmount atomically adds amount to the fund's accumulated total.
// The ADD expression is a single server-side operation, so concurrent
// completions on the same fund serialize without lost updates. A campaign fund
// whose new total meets or exceeds its target is then flipped to COMPLETED via
// a conditional write; the flip condition re-checks the stored total, so the
// race between two completing donations resolves to exactly one flip.
func (s *Store) IncrementFundAmount(ctx context.Context, fundID string, amount int64) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.FundsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fundID},
		},
		UpdateExpression:    aws.String("ADD current_amount :amount SET updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":now":    nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrFundNotFound
		}
		return fmt.Errorf("failed to increment fund %s: %w", fundID, err)
	}

	return s.completeCampaignIfFunded(ctx, fundID, nowAV)
}

// completeCampaignIfFunded flips an ACTIVE campaign fund to COMPLETED once its
// accumulated total has reached the target. The conditional check failing is
// the common case (open-ended fund, target not reached, or already flipped)
// and is not an error.
func (s *Store) completeCampaignIfFunded(ctx context.Context, fundID string, nowAV types.AttributeValue) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.FundsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fundID},
		},
		UpdateExpression:    aws.String("SET #status = :completed_status, updated_at = :now"),
		ConditionExpression: aws.String("#status = :active_status AND fund_type = :campaign AND target_amount > :zero AND current_amount >= target_amount"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed_status": &types.AttributeValueMemberS{Value: string(models.FundCompleted)},
			":active_status":    &types.AttributeValueMemberS{Value: string(models.FundActive)},
			":campaign":         &types.AttributeValueMemberS{Value: string(models.FundTypeCampaign)},
			":zero":             &types.AttributeValueMemberN{Value: "0"},
			":now":              nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil
		}
		return fmt.Errorf("failed to check campaign completion for fund %s: %w", fundID, err)
	}

	return nil
}
