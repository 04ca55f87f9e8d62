package dynamodb

import (
	"context"

	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the store.
// It exists so tests can substitute a mock for the real client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client             DynamoDBAPI
	DonationsTableName string
	FundsTableName     string
}

// New creates a new Store.
func New(client DynamoDBAPI, donationsTable, fundsTable string) *Store {
	return &Store{
		Client:             client,
		DonationsTableName: donationsTable,
		FundsTableName:     fundsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
