package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// SQSDispatcher implements the Dispatcher interface using AWS SQS. The queue
// is consumed by the push-notification sender, which is outside this service.
type SQSDispatcher struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSDispatcher creates a new SQSDispatcher.
func NewSQSDispatcher(client *sqs.Client, queueURL string) *SQSDispatcher {
	return &SQSDispatcher{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Dispatcher = (*SQSDispatcher)(nil)

// DonationConfirmed sends a donationConfirmed message to the notification queue.
func (d *SQSDispatcher) DonationConfirmed(ctx context.Context, confirmation DonationConfirmation) error {
	message := Message{
		Id:      uuid.New().String(),
		Type:    MessageTypeDonationConfirmed,
		Payload: confirmation,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification for SQS: %w", err)
	}

	_, err = d.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.QueueURL),
		MessageBody: aws.String(string(body)),
	})

	if err != nil {
		return fmt.Errorf("failed to send notification to SQS: %w", err)
	}

	return nil
}
