package billing

import "context"

// Authority is the external source of truth for subscription status.
// Implementations must treat lookup failures as errors, never as "no
// subscription", so the reconciler can fall back to the cached flag.
type Authority interface {
	// ActiveSubscription reports whether the email has an active or
	// trialing subscription with the billing provider.
	ActiveSubscription(ctx context.Context, email string) (bool, error)
}

// SessionService creates hosted billing UI sessions. The URLs returned
// are opaque to this system; the client redirects the browser to them.
type SessionService interface {
	CreateCheckoutSession(ctx context.Context, email string) (url string, err error)
	CreatePortalSession(ctx context.Context, email string) (url string, err error)
}
