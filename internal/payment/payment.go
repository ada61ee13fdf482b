package payment

import "context"

// Intent is a deposit payment attempt created with the external processor.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// Processor is the boundary to the external payment service. The deposit is
// a fixed configured amount, not derived from the selection total.
type Processor interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)
	Confirm(ctx context.Context, intentID string) (string, error)
	Refund(ctx context.Context, intentID string, amountCents int64) (string, error)
}
