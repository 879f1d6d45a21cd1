//go:build unit

package deal_test

import (
	"testing"
	"time"

	"breakfast-deals/internal/domain/deal"
	"breakfast-deals/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

type testCase struct {
	name   string
	mutate func(*builder.DealBuilder)
	errIs  error
}

func TestDealValidate(t *testing.T) {
	runCases(t, []testCase{
		{name: "valid deal"},
		{
			name:   "missing id",
			mutate: func(b *builder.DealBuilder) { b.ID = " " },
			errIs:  deal.ErrMissingID,
		},
		{
			name:   "missing hotel id",
			mutate: func(b *builder.DealBuilder) { b.HotelID = "" },
			errIs:  deal.ErrMissingHotelID,
		},
		{
			name:   "negative price",
			mutate: func(b *builder.DealBuilder) { b.Price = -1 },
			errIs:  deal.ErrNegativePrice,
		},
		{
			name:   "price above original",
			mutate: func(b *builder.DealBuilder) { b.Price = 40 },
			errIs:  deal.ErrPriceAboveOrigin,
		},
		{
			name:   "price equal to original",
			mutate: func(b *builder.DealBuilder) { b.Price = b.OriginalPrice },
		},
		{
			name:   "free deal",
			mutate: func(b *builder.DealBuilder) { b.Price = 0 },
		},
		{
			name:   "missing currency",
			mutate: func(b *builder.DealBuilder) { b.Currency = "" },
			errIs:  deal.ErrMissingCurrency,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewDealBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			err := b.Build().Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDealHelpers(t *testing.T) {
	d := builder.NewDealBuilder().Build()

	assert.True(t, d.HasTimeSlot("7:00 AM - 8:30 AM"))
	assert.False(t, d.HasTimeSlot("7:00 AM"))
	assert.InDelta(t, 10.0, d.Discount(), 0.0001)

	other := builder.NewDealBuilder().With(func(b *builder.DealBuilder) {
		b.ID = "deal2"
		b.HotelID = "hotel2"
	}).Build()
	deals := []deal.Deal{d, other}

	found, ok := deal.FindByID(deals, "deal2")
	assert.True(t, ok)
	assert.Equal(t, "hotel2", found.HotelID)

	_, ok = deal.FindByID(deals, "deal9")
	assert.False(t, ok)

	assert.Len(t, deal.FilterByHotels(deals, []string{"hotel1"}), 1)
	assert.Len(t, deal.FilterByHotels(deals, []string{"hotel1", "hotel2"}), 2)
	assert.Empty(t, deal.FilterByHotels(deals, nil))
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := deal.GenerateTimeSlots()

	assert.Len(t, slots, 10)
	assert.Equal(t, "6:00 AM - 6:30 AM", slots[0])
	assert.Equal(t, "6:30 AM - 7:00 AM", slots[1])
	assert.Equal(t, "10:30 AM - 11:00 AM", slots[len(slots)-1])
}

func TestNewDefaultBreakfast(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	d := deal.NewDefaultBreakfast("hotel7", "Seaside Inn", "https://img.example.com/x.jpg", now)

	assert.NoError(t, d.Validate())
	assert.Equal(t, "default_hotel7", d.ID)
	assert.Equal(t, "hotel7", d.HotelID)
	assert.Contains(t, d.Description, "Seaside Inn")
	assert.Equal(t, 24.99, d.Price)
	assert.Equal(t, 34.99, d.OriginalPrice)
	assert.Equal(t, now.Add(30*24*time.Hour), d.AvailableUntil)
	assert.Equal(t, deal.ValidUntil(now), d.AvailableUntil)
	assert.Equal(t, deal.GenerateTimeSlots(), d.TimeSlots)
}
