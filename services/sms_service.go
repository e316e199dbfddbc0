package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SMSSender delivers one text to one phone number. A nil sender means
// the SMS channel is unconfigured and gets skipped entirely.
type SMSSender interface {
	Send(ctx context.Context, phone, text string) error
}

type SNSSender struct {
	sns      *awssns.Client
	senderID string
}

func NewSNSSender(ctx context.Context, region, senderID string) (*SNSSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSSender{
		sns:      awssns.NewFromConfig(cfg),
		senderID: senderID,
	}, nil
}

func (s *SNSSender) Send(ctx context.Context, phone, text string) error {
	in := &awssns.PublishInput{
		Message:     aws.String(text),
		PhoneNumber: aws.String(phone),
	}
	if s.senderID != "" {
		in.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.senderID),
			},
		}
	}
	_, err := s.sns.Publish(ctx, in)
	return err
}
