package payment

import (
	"context"
	"fmt"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// 以美元金額建立付款，回傳前端確認付款用的client secret
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type intentsAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeBridge struct {
	intents intentsAPI
}

// 使用獨立的Stripe client，不設定全域的stripe.Key
func NewStripeBridge(secretKey string) *StripeBridge {
	sc := client.New(secretKey, nil)
	return &StripeBridge{intents: sc.PaymentIntents}
}

// 美元轉為美分，不足一分的部分捨去
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

func (b *StripeBridge) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := b.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
