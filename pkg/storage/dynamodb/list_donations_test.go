package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MagloireKITIO/ifa-donations/pkg/models"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage/dynamodb/mocks"
)

func TestGetStalePendingDonations(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DonationsTableName: "donations"}

		staleDonation := &models.Donation{Id: "donation-1", Status: models.PENDING, Reference: "donation-1"}
		staleAV, _ := attributevalue.MarshalMap(staleDonation)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == "status-created_at-index" && *input.FilterExpression == "created_at < :cutoff"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{staleAV}}, nil).Once()

		donations, err := store.GetStalePendingDonations(context.Background(), 30*time.Minute)

		assert.NoError(t, err)
		assert.Len(t, donations, 1)
		assert.Equal(t, models.PENDING, donations[0].Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Query Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DonationsTableName: "donations"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("dynamodb down")).Once()

		_, err := store.GetStalePendingDonations(context.Background(), 30*time.Minute)

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestListDonationsByUserID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DonationsTableName: "donations"}

		donationAV, _ := attributevalue.MarshalMap(&models.Donation{Id: "donation-1", UserId: "user-1"})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == "user_id-index"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{donationAV}}, nil).Once()

		donations, err := store.ListDonationsByUserID(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Len(t, donations, 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Donations", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, DonationsTableName: "donations"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil).Once()

		donations, err := store.ListDonationsByUserID(context.Background(), "user-2")

		assert.NoError(t, err)
		assert.Empty(t, donations)
		mockClient.AssertExpectations(t)
	})
}
