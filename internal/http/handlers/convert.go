package handlers

import (
	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/ledger"
)

func sponsorsToResponse(balances []domain.SponsorBalance) sponsorsResponse {
	resp := sponsorsResponse{Sponsors: make([]sponsorDTO, 0, len(balances))}
	for _, b := range balances {
		resp.Sponsors = append(resp.Sponsors, sponsorDTO{
			SponsorID:         b.SponsorID,
			Name:              b.Name,
			Balance:           b.Balance,
			AllowedCategories: b.AllowedCategories,
		})
		resp.TotalPoints += b.Balance
	}
	return resp
}

func purchaseItemsToService(items []purchaseItemRequest) []ledger.PurchaseItem {
	out := make([]ledger.PurchaseItem, 0, len(items))
	for _, it := range items {
		out = append(out, ledger.PurchaseItem{
			ProductID: it.ID,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return out
}

func purchaseResultToResponse(res domain.PurchaseResult) purchaseResponse {
	return purchaseResponse{
		OrderID:         res.OrderID,
		ItemsPurchased:  res.ItemsPurchased,
		TotalSpent:      res.TotalSpent,
		PreviousBalance: res.PreviousBalance,
		NewBalance:      res.NewBalance,
	}
}

func insufficientToResponse(ib *apperr.InsufficientBalanceError) insufficientResponse {
	return insufficientResponse{
		Error:     "insufficient balance",
		SponsorID: ib.SponsorID,
		Required:  ib.Required,
		Available: ib.Available,
		Shortfall: ib.Shortfall(),
	}
}

func cancelResultToResponse(res domain.CancelResult) cancelResponse {
	return cancelResponse{
		OrderID:        res.OrderID,
		RefundedPoints: res.RefundedPoints,
		NewBalance:     res.NewBalance,
	}
}

func orderToDTO(o *domain.Order) orderDTO {
	dto := orderDTO{
		ID:             o.ID,
		DriverID:       o.DriverID,
		SponsorID:      o.SponsorID,
		TotalPoints:    o.TotalPoints,
		Status:         string(o.Status),
		TrackingNumber: o.TrackingNumber,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, it := range o.Items {
		dto.Items = append(dto.Items, orderItemDTO{
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			PointsPerItem: it.PointsPerItem,
		})
	}
	return dto
}

func ordersToResponse(orders []domain.Order) ordersResponse {
	resp := ordersResponse{Orders: make([]orderDTO, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, orderToDTO(&orders[i]))
	}
	return resp
}

func alertsToResponse(alerts []domain.Alert) alertsResponse {
	resp := alertsResponse{Alerts: make([]alertDTO, 0, len(alerts))}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, alertDTO{
			ID:        a.ID,
			Message:   a.Message,
			CreatedAt: a.CreatedAt,
		})
	}
	return resp
}
