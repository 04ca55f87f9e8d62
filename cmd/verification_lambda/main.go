package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	donationsvc "github.com/MagloireKITIO/ifa-donations/pkg/donations"
	"github.com/MagloireKITIO/ifa-donations/pkg/notify"
	"github.com/MagloireKITIO/ifa-donations/pkg/paystack"
	"github.com/MagloireKITIO/ifa-donations/pkg/reconcile"
	"github.com/MagloireKITIO/ifa-donations/pkg/storage"
	dydbstore "github.com/MagloireKITIO/ifa-donations/pkg/storage/dynamodb"
)

var store storage.Storage
var service *donationsvc.Service

const stalePendingThreshold = 30 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	donationsTable := os.Getenv("DYNAMODB_DONATIONS_TABLE_NAME")
	fundsTable := os.Getenv("DYNAMODB_FUNDS_TABLE_NAME")
	if donationsTable == "" || fundsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("PAYSTACK_SECRET_KEY environment variable not set")
	}
	gateway := paystack.NewClient(os.Getenv("PAYSTACK_BASE_URL"), secretKey, os.Getenv("PAYSTACK_WEBHOOK_SECRET"))

	var dispatcher notify.Dispatcher = &notify.NoOpDispatcher{}
	if queueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		dispatcher = notify.NewSQSDispatcher(sqs.NewFromConfig(cfg), queueURL)
	}

	store = dydbstore.New(dbClient, donationsTable, fundsTable)
	engine := reconcile.NewEngine(store, store, store, dispatcher)
	service = donationsvc.NewService(store, gateway, engine, "")
}

// HandleRequest is triggered by an EventBridge Schedule. It re-verifies
// donations stuck in PENDING against the gateway, covering webhook loss.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting verification sweep for stale pending donations...")

	staleDonations, err := store.GetStalePendingDonations(ctx, stalePendingThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stale pending donations: %v", err)
		return err
	}

	if len(staleDonations) == 0 {
		log.Println("No stale pending donations found.")
		return nil
	}

	log.Printf("Found %d stale pending donations. Verifying them...", len(staleDonations))

	for _, donation := range staleDonations {
		verified, err := service.Verify(ctx, donation.Id)
		if err != nil {
			if errors.Is(err, donationsvc.ErrNoTransaction) {
				log.Printf("Donation %s has no gateway reference, skipping", donation.Id)
				continue
			}
			log.Printf("ERROR: failed to verify donation %s: %v", donation.Id, err)
			// Continue to the next donation, don't let one failure stop the whole sweep.
			continue
		}
		log.Printf("Verified donation %s, status is now %s", donation.Id, verified.Status)
	}

	log.Println("Verification sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
