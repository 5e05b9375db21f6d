package usage

import "context"

// Service orchestrates the monthly remote-generation allowance.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseToken deducts one token from the client's monthly allowance.
// If the client row does not exist yet it is initialised and the token is
// immediately consumed. Returns ErrInsufficientTokens when the quota for the
// current month is exhausted.
func (s *Service) UseToken(ctx context.Context, clientKey string) error {
	err := s.store.UseToken(ctx, clientKey)
	if err != ErrInsufficientTokens {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureClient(ctx, clientKey); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, clientKey)
}
