package entities

// PartAvailabilityQuery is one line of a batch availability check sent to the
// parts service.

type PartAvailabilityQuery struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// PartAvailability is the per-part answer of an availability check.

type PartAvailability struct {
	PartID       string `json:"part_id"`
	Description  string `json:"description,omitempty"`
	Requested    int    `json:"requested"`
	CurrentStock int    `json:"current_stock"`
	Available    bool   `json:"available"`
}

// PartsAvailabilityResult aggregates a batch check. The result is advisory:
// missing stock does not block budget generation.

type PartsAvailabilityResult struct {
	AllAvailable    bool               `json:"all_available"`
	HasMissingParts bool               `json:"has_missing_parts"`
	Items           []PartAvailability `json:"items"`
}

// PartStock is the current stock position of a single inventory part.

type PartStock struct {
	PartID       string `json:"part_id"`
	CurrentStock int    `json:"current_stock"`
	Unit         string `json:"unit,omitempty"`
}

// PartStockCheck is the blocking single-item variant used when a part is
// picked into a budget.

type PartStockCheck struct {
	PartStock
	Requested  int  `json:"requested"`
	Sufficient bool `json:"sufficient"`
}
