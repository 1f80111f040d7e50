package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

func TestPoints_Rounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole", 5.00, 500},
		{"cents", 3.25, 325},
		{"rounds up", 9.995, 1000},
		{"rounds down", 9.994, 999},
		{"half cent up", 19.995, 2000},
		{"binary noise", 0.615, 62},
		{"sub-cent up", 0.005, 1},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, domain.Points(tc.price))
		})
	}
}

func TestCartItem_TotalPoints(t *testing.T) {
	t.Parallel()

	item := domain.CartItem{ProductID: 1, Price: 19.99, Quantity: 3}
	require.Equal(t, int64(5997), item.TotalPoints())
}

func TestCartItem_SameIdentity(t *testing.T) {
	t.Parallel()

	s1, s2 := int64(1), int64(2)

	item := domain.CartItem{ProductID: 7, SponsorID: &s1}
	require.True(t, item.SameIdentity(7, &s1))
	require.False(t, item.SameIdentity(7, &s2))
	require.False(t, item.SameIdentity(8, &s1))
	require.False(t, item.SameIdentity(7, nil))

	unsponsored := domain.CartItem{ProductID: 7}
	require.True(t, unsponsored.SameIdentity(7, nil))
	require.False(t, unsponsored.SameIdentity(7, &s1))
}
