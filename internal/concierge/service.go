package concierge

import (
	"context"
	"strings"

	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
	"github.com/nashwabd/storefront-backend/pkg/logger"
)

// The concierge never surfaces generator failures to the shopper; it answers
// with these instead.
const (
	FallbackConnection = "I'm having a spot of trouble connecting. Please try again later."
	FallbackEmpty      = "I'm sorry, I couldn't process that request."
)

// Transcripts resolves the transcript belonging to a shopper session.
type Transcripts interface {
	TranscriptOf(sessionID string) (*Transcript, error)
}

// Generator produces the concierge's reply to a prompt given the conversation
// so far.
type Generator interface {
	Reply(ctx context.Context, history []Message, prompt string) (string, error)
}

// SendInput carries a shopper message.
type SendInput struct {
	Text string `json:"text" validate:"required"`
}

// DTO is the transcript snapshot returned to clients.
type DTO struct {
	Messages []Message `json:"messages"`
	Awaiting bool      `json:"awaiting"`
}

// ServiceParams groups dependencies for the concierge service.
type ServiceParams struct {
	Transcripts Transcripts
	Generator   Generator
	Logger      *logger.Logger
}

// Service exposes the concierge conversation flow.
type Service interface {
	History(ctx context.Context, sessionID string) (DTO, error)
	Send(ctx context.Context, sessionID string, input SendInput) (DTO, error)
}

type service struct {
	transcripts Transcripts
	generator   Generator
	logger      *logger.Logger
}

// NewService builds a concierge service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Transcripts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transcript source is required")
	}
	if params.Generator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "generator is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		transcripts: params.Transcripts,
		generator:   params.Generator,
		logger:      params.Logger,
	}, nil
}

// History returns the conversation so far.
func (s *service) History(ctx context.Context, sessionID string) (DTO, error) {
	transcript, err := s.transcripts.TranscriptOf(sessionID)
	if err != nil {
		return DTO{}, err
	}
	return snapshot(transcript), nil
}

// Send appends the shopper's message and composes a reply. Only one reply may
// be in flight per transcript; a second send while composing is rejected.
func (s *service) Send(ctx context.Context, sessionID string, input SendInput) (DTO, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return DTO{}, pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}

	transcript, err := s.transcripts.TranscriptOf(sessionID)
	if err != nil {
		return DTO{}, err
	}

	if !transcript.TryBegin() {
		return DTO{}, pkgerrors.New(pkgerrors.CodeConflict, "a reply is already being composed")
	}
	defer transcript.End()

	history := transcript.Messages()
	transcript.Append(Message{Role: RoleUser, Text: text})

	reply, err := s.generator.Reply(ctx, history, text)
	if err != nil {
		s.logger.Error(ctx, "concierge reply failed", err)
		reply = FallbackConnection
	} else if strings.TrimSpace(reply) == "" {
		reply = FallbackEmpty
	}

	transcript.Append(Message{Role: RoleModel, Text: reply})
	return snapshot(transcript), nil
}

func snapshot(transcript *Transcript) DTO {
	return DTO{
		Messages: transcript.Messages(),
		Awaiting: transcript.Awaiting(),
	}
}
