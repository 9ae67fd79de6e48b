package dto

import (
	"bookme/internal/domains/availability/model"
)

type SlotResponse struct {
	Time     string `json:"time"`
	Occupied bool   `json:"occupied"`
}

type GetSlotsResponse struct {
	BusinessID string         `json:"business_id"`
	ServiceID  string         `json:"service_id,omitempty"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func (g *GetSlotsResponse) FromModels(businessID, serviceID, date string, slots []model.Slot) {
	g.BusinessID = businessID
	g.ServiceID = serviceID
	g.Date = date

	g.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		g.Slots[i] = SlotResponse{
			Time:     slot.Time.String(),
			Occupied: slot.Occupied,
		}
	}
}
