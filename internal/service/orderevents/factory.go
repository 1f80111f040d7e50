package orderevents

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onTransition func(context.Context, Event, string) error) *actionFactory {
	wrap := func(status string) actionFunc {
		return func(ctx context.Context, e Event) error {
			return onTransition(ctx, e, status)
		}
	}
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"processing": wrap("PROCESSING"),
			"shipped":    wrap("SHIPPED"),
			"delivered":  wrap("DELIVERED"),
			"cancelled":  wrap("CANCELLED"),
			// US spelling shows up in some producers
			"canceled": wrap("CANCELLED"),
		},
	}
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	fn, ok := f.byStatus[status]
	return fn, ok
}
