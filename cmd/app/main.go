package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	donationsvc "github.com/MagloireKITIO/ifa-donations/pkg/donations"
	donationshandler "github.com/MagloireKITIO/ifa-donations/pkg/handlers/donations"
	fundshandler "github.com/MagloireKITIO/ifa-donations/pkg/handlers/funds"
	webhookhandler "github.com/MagloireKITIO/ifa-donations/pkg/handlers/webhook"
	"github.com/MagloireKITIO/ifa-donations/pkg/middleware"
	"github.com/MagloireKITIO/ifa-donations/pkg/notify"
	"github.com/MagloireKITIO/ifa-donations/pkg/paystack"
	"github.com/MagloireKITIO/ifa-donations/pkg/reconcile"
	dydbstore "github.com/MagloireKITIO/ifa-donations/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
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

	// Paystack client
	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("PAYSTACK_SECRET_KEY environment variable not set")
	}
	webhookSecret := os.Getenv("PAYSTACK_WEBHOOK_SECRET")
	if webhookSecret == "" {
		// Fail closed: every webhook delivery will be rejected until the
		// secret is configured.
		slog.Error("PAYSTACK_WEBHOOK_SECRET is not set; all webhook deliveries will be rejected")
	}
	gateway := paystack.NewClient(os.Getenv("PAYSTACK_BASE_URL"), secretKey, webhookSecret)

	// Notification dispatcher
	var dispatcher notify.Dispatcher
	if queueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		dispatcher = notify.NewSQSDispatcher(sqs.NewFromConfig(cfg), queueURL)
	} else {
		slog.Warn("NOTIFICATIONS_QUEUE_URL not set, donor notifications are disabled")
		dispatcher = &notify.NoOpDispatcher{}
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, donationsTable, fundsTable)

	// Wire the reconciliation engine and the donation services.
	engine := reconcile.NewEngine(store, store, store, dispatcher)
	service := donationsvc.NewService(store, gateway, engine, os.Getenv("PAYMENT_CALLBACK_URL"))

	donationsHandler := donationshandler.NewDonationsHandler(service, store)
	fundsHandler := fundshandler.NewFundsHandler(store)
	webhookHandler := webhookhandler.NewWebhookHandler(gateway, engine)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Post("/donations", donationsHandler.CreateDonation)
	router.Get("/donations/{donationId}", donationsHandler.GetDonationById)
	router.Get("/donations/{donationId}/verify", donationsHandler.VerifyDonation)
	router.Get("/users/{userId}/donations", donationsHandler.ListDonationsByUserId)

	router.Post("/webhooks/paystack", webhookHandler.HandlePaystackWebhook)

	router.Post("/funds", fundsHandler.CreateFund)
	router.Get("/funds", fundsHandler.ListFunds)
	router.Get("/funds/{fundId}", fundsHandler.GetFundById)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
