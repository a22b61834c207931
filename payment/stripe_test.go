package payment

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"testing"
)

type fakeIntents struct {
	got *stripe.PaymentIntentParams
	err error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}, nil
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{25, 2500},
		{12.5, 1250},
		{10.999, 1099},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.price), "price %v", tt.price)
	}
}

func TestCreateIntent(t *testing.T) {
	fake := &fakeIntents{}
	bridge := &StripeBridge{intents: fake}

	secret, err := bridge.CreateIntent(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", secret)

	require.NotNil(t, fake.got)
	assert.Equal(t, int64(2500), *fake.got.Amount)
	assert.Equal(t, "usd", *fake.got.Currency)
	assert.Equal(t, []*string{stripe.String("card")}, fake.got.PaymentMethodTypes)
}

func TestCreateIntentError(t *testing.T) {
	providerErr := errors.New("card_declined")
	bridge := &StripeBridge{intents: &fakeIntents{err: providerErr}}

	_, err := bridge.CreateIntent(context.Background(), 10)
	assert.ErrorIs(t, err, providerErr)
}
