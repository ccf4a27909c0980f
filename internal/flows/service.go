package flows

import "context"

// Service is the centralized flow runner built once by the root engine.
type Service struct {
	deps Deps
}

// New returns a flow service with immutable dependency wiring.
func New(deps Deps) Service {
	return Service{deps: deps}
}

// Initialized reports whether the service has been wired with flow deps.
func (s Service) Initialized() bool {
	return s.deps.Store != nil
}

func (s Service) Generate(ctx context.Context, userID string, scopes []string) (IssuedPair, error) {
	return RunGenerate(ctx, userID, scopes, s.deps)
}

func (s Service) Validate(ctx context.Context, rawToken string) ValidateResult {
	return RunValidate(ctx, rawToken, s.deps)
}

func (s Service) Refresh(ctx context.Context, rawRefresh string) RefreshResult {
	return RunRefresh(ctx, rawRefresh, s.deps)
}

func (s Service) Revoke(ctx context.Context, rawToken string) (bool, error) {
	return RunRevoke(ctx, rawToken, s.deps)
}
