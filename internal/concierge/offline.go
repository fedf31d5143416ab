package concierge

import (
	"context"

	pkgerrors "github.com/nashwabd/storefront-backend/pkg/errors"
)

// OfflineGenerator is wired when no Gemini API key is configured. Every send
// surfaces the connection fallback instead of failing the request.
type OfflineGenerator struct{}

func NewOfflineGenerator() OfflineGenerator {
	return OfflineGenerator{}
}

func (OfflineGenerator) Reply(ctx context.Context, history []Message, prompt string) (string, error) {
	return "", pkgerrors.New(pkgerrors.CodeDependency, "concierge generator is not configured")
}
