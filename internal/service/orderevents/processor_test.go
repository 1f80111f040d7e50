package orderevents_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/orderevents"
)

func TestProcessor_Handle_AppliesTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		eventStatus string
		want        domain.OrderStatus
	}{
		{"processing", domain.StatusProcessing},
		{"SHIPPED", domain.StatusShipped},
		{" delivered ", domain.StatusDelivered},
		{"cancelled", domain.StatusCancelled},
		{"canceled", domain.StatusCancelled},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.eventStatus, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			l := NewMockLedgerPort(ctrl)
			l.EXPECT().
				UpdateStatus(gomock.Any(), int64(42), tc.want).
				Return(&domain.Order{ID: 42, Status: tc.want}, nil)

			p := orderevents.NewProcessor(l, logx.Nop())
			err := p.Handle(context.Background(), orderevents.Event{OrderID: 42, Status: tc.eventStatus})
			require.NoError(t, err)
		})
	}
}

func TestProcessor_Handle_UnknownStatusSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := NewMockLedgerPort(ctrl)

	p := orderevents.NewProcessor(l, logx.Nop())
	err := p.Handle(context.Background(), orderevents.Event{OrderID: 42, Status: "cooking"})
	require.NoError(t, err)
}

func TestProcessor_Handle_NotFoundSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := NewMockLedgerPort(ctrl)
	l.EXPECT().
		UpdateStatus(gomock.Any(), int64(42), domain.StatusShipped).
		Return(nil, apperr.ErrNotFound)

	p := orderevents.NewProcessor(l, logx.Nop())
	err := p.Handle(context.Background(), orderevents.Event{OrderID: 42, Status: "shipped"})
	require.NoError(t, err)
}

func TestProcessor_Handle_ConflictSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := NewMockLedgerPort(ctrl)
	l.EXPECT().
		UpdateStatus(gomock.Any(), int64(42), domain.StatusCancelled).
		Return(nil, apperr.ErrConflict)

	p := orderevents.NewProcessor(l, logx.Nop())
	err := p.Handle(context.Background(), orderevents.Event{OrderID: 42, Status: "cancelled"})
	require.NoError(t, err)
}

func TestProcessor_Handle_TransientErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("db down")
	l := NewMockLedgerPort(ctrl)
	l.EXPECT().
		UpdateStatus(gomock.Any(), int64(42), domain.StatusShipped).
		Return(nil, boom)

	p := orderevents.NewProcessor(l, logx.Nop())
	err := p.Handle(context.Background(), orderevents.Event{OrderID: 42, Status: "shipped"})
	require.ErrorIs(t, err, boom)
}
