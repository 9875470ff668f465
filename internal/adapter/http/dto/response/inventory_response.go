package response

import (
	"smart_oficina/internal/domain/entities"
)

type PartAvailabilityResponse struct {
	PartID       string `json:"part_id"`
	Description  string `json:"description,omitempty"`
	Requested    int    `json:"requested"`
	CurrentStock int    `json:"current_stock"`
	Available    bool   `json:"available"`
}

type PartsAvailabilityResponse struct {
	AllAvailable    bool                       `json:"all_available"`
	HasMissingParts bool                       `json:"has_missing_parts"`
	Items           []PartAvailabilityResponse `json:"items"`
}

func FromPartsAvailability(r entities.PartsAvailabilityResult) PartsAvailabilityResponse {
	items := make([]PartAvailabilityResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, PartAvailabilityResponse{
			PartID:       it.PartID,
			Description:  it.Description,
			Requested:    it.Requested,
			CurrentStock: it.CurrentStock,
			Available:    it.Available,
		})
	}
	return PartsAvailabilityResponse{
		AllAvailable:    r.AllAvailable,
		HasMissingParts: r.HasMissingParts,
		Items:           items,
	}
}

type PartStockResponse struct {
	PartID       string `json:"part_id"`
	CurrentStock int    `json:"current_stock"`
	Unit         string `json:"unit,omitempty"`
	Requested    int    `json:"requested"`
	Sufficient   bool   `json:"sufficient"`
}

func FromPartStockCheck(s entities.PartStockCheck) PartStockResponse {
	return PartStockResponse{
		PartID:       s.PartID,
		CurrentStock: s.CurrentStock,
		Unit:         s.Unit,
		Requested:    s.Requested,
		Sufficient:   s.Sufficient,
	}
}
