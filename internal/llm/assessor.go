package llm

import (
	"context"
)

// Assessor is the structured-judgment capability: one prompt in, one decoded
// JSON value out. Decoding failures are reported as *ParseError.
type Assessor interface {
	Assess(ctx context.Context, req Request, out any) error
}

// JSONAssessor implements Assessor on top of a Provider
type JSONAssessor struct {
	provider Provider
}

// NewAssessor wraps a provider. A nil provider yields an assessor that
// always returns ErrNotConfigured.
func NewAssessor(provider Provider) *JSONAssessor {
	return &JSONAssessor{provider: provider}
}

// Assess forces JSON mode, runs the completion and decodes the answer into out
func (a *JSONAssessor) Assess(ctx context.Context, req Request, out any) error {
	if !a.Configured() {
		return ErrNotConfigured
	}

	req.JSON = true
	resp, err := a.provider.Complete(ctx, req)
	if err != nil {
		return err
	}
	return ParseJSON(resp.Text, out)
}

// Configured reports whether a provider with credentials is attached
func (a *JSONAssessor) Configured() bool {
	return a != nil && a.provider != nil && a.provider.IsConfigured()
}

// ProviderName returns the attached provider's name, or "" when disabled
func (a *JSONAssessor) ProviderName() string {
	if a == nil || a.provider == nil {
		return ""
	}
	return a.provider.Name()
}
