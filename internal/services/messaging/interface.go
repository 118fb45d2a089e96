package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tallybot/tally/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetMilestoneMessage returns a celebratory message for a milestone count
	GetMilestoneMessage(ctx context.Context, input *GetMilestoneMessageInput) (*GetMilestoneMessageOutput, error)

	// GetRejectedMessage returns a reply explaining why a count was rejected
	GetRejectedMessage(ctx context.Context, input *GetRejectedMessageInput) (*GetRejectedMessageOutput, error)

	// GetResetMessage returns an announcement for a count reset
	GetResetMessage(ctx context.Context, input *GetResetMessageInput) (*GetResetMessageOutput, error)

	// GetEvalResultMessage returns the reply for an evaluation-only request
	GetEvalResultMessage(ctx context.Context, input *GetEvalResultMessageInput) (*GetEvalResultMessageOutput, error)
}
