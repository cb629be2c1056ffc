package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	portalsession "github.com/stripe/stripe-go/v82/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/subscription"

	"trackbudget/internal/errors"
)

// Premium subscription pricing used when no Stripe price ID is configured.
const (
	premiumProductName = "TrackBudget Premium"
	premiumUnitAmount  = 2499 // cents, billed monthly
)

// StripeAuthority resolves subscription status and creates checkout and
// portal sessions against Stripe. Customers are looked up by email; the
// system never stores Stripe customer ids.
type StripeAuthority struct {
	priceID   string
	clientURL string
}

var _ Authority = (*StripeAuthority)(nil)

// NewStripeAuthority configures the global Stripe client key and
// returns an authority bound to it.
func NewStripeAuthority(secretKey, priceID, clientURL string) *StripeAuthority {
	stripe.Key = secretKey
	return &StripeAuthority{priceID: priceID, clientURL: clientURL}
}

// ActiveSubscription reports whether the email has an active or
// trialing subscription.
func (a *StripeAuthority) ActiveSubscription(ctx context.Context, email string) (bool, error) {
	customerID, err := a.findCustomer(ctx, email)
	if err != nil {
		return false, err
	}
	if customerID == "" {
		return false, nil
	}

	subParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	subParams.Context = ctx
	iter := subscription.List(subParams)
	for iter.Next() {
		sub := iter.Subscription()
		if sub.Status == stripe.SubscriptionStatusActive || sub.Status == stripe.SubscriptionStatusTrialing {
			return true, nil
		}
	}
	if err := iter.Err(); err != nil {
		return false, fmt.Errorf("list subscriptions: %w", err)
	}
	return false, nil
}

// CreateCheckoutSession starts a monthly subscription checkout locked
// to the caller's email and returns the hosted checkout URL.
func (a *StripeAuthority) CreateCheckoutSession(ctx context.Context, email string) (string, error) {
	lineItem := &stripe.CheckoutSessionLineItemParams{Quantity: stripe.Int64(1)}
	if a.priceID != "" {
		lineItem.Price = stripe.String(a.priceID)
	} else {
		lineItem.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:    stripe.String(string(stripe.CurrencyUSD)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String(premiumProductName)},
			UnitAmount:  stripe.Int64(premiumUnitAmount),
			Recurring:   &stripe.CheckoutSessionLineItemPriceDataRecurringParams{Interval: stripe.String("month")},
		}
	}

	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(email),
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems:     []*stripe.CheckoutSessionLineItemParams{lineItem},
		SuccessURL:    stripe.String(a.clientURL + "/settings"),
		CancelURL:     stripe.String(a.clientURL + "/settings"),
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// CreatePortalSession opens the Stripe customer portal for the caller.
// Returns ErrNoBillingHistory when the email has no Stripe customer.
func (a *StripeAuthority) CreatePortalSession(ctx context.Context, email string) (string, error) {
	customerID, err := a.findCustomer(ctx, email)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		return "", errors.ErrNoBillingHistory
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(a.clientURL + "/settings"),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("create portal session: %w", err)
	}
	return sess.URL, nil
}

func (a *StripeAuthority) findCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Limit = stripe.Int64(1)
	params.Context = ctx
	iter := customer.List(params)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("list customers: %w", err)
	}
	return "", nil
}
