package kafka

import (
	"strings"
	"time"

	"github.com/bennett-mcdowell/F25-Team03/internal/service/orderevents"
)

// EventDTO is a data transfer object for orderevents.Event
type EventDTO struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orderevents.Event
func ToDomain(dto EventDTO) orderevents.Event {
	return orderevents.Event{
		OrderID:   dto.OrderID,
		Status:    strings.TrimSpace(dto.Status),
		CreatedAt: dto.CreatedAt,
	}
}
