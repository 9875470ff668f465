package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase/interfaces"
)

var ErrMissingPartsAPIURL = errors.New("missing PARTS_API_URL")
var ErrPartsGatewayNotConfigured = errors.New("parts gateway not configured")

// PartsHTTPGateway talks to the parts-inventory service over HTTP. In mock
// mode every check answers "in stock", which keeps local development usable
// without the inventory service running.

type PartsHTTPGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPartsInventoryGateway = (*PartsHTTPGateway)(nil)

func NewPartsHTTPGateway(baseURL string) (*PartsHTTPGateway, error) {
	if isPartsGatewayMockEnabled() {
		log.Printf("[inventory][gateway] mock mode enabled")
		return &PartsHTTPGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[inventory][gateway] missing PARTS_API_URL")
		return nil, ErrMissingPartsAPIURL
	}
	log.Printf("[inventory][gateway] parts inventory client initialized base_url=%s", baseURL)

	return &PartsHTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type availabilityRequestBody struct {
	Items []availabilityQueryBody `json:"items"`
}

type availabilityQueryBody struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

type availabilityResponseBody struct {
	AllAvailable    bool `json:"all_available"`
	HasMissingParts bool `json:"has_missing_parts"`
	Items           []struct {
		PartID       string `json:"part_id"`
		Description  string `json:"description"`
		Requested    int    `json:"requested"`
		CurrentStock int    `json:"current_stock"`
		Available    bool   `json:"available"`
	} `json:"items"`
}

type stockResponseBody struct {
	PartID       string `json:"part_id"`
	CurrentStock int    `json:"current_stock"`
	Unit         string `json:"unit"`
}

func (g *PartsHTTPGateway) CheckAvailability(ctx context.Context, items []entities.PartAvailabilityQuery) (entities.PartsAvailabilityResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[inventory][gateway] mock availability check items=%d", len(items))
		return mockAvailability(items), nil
	}
	if g == nil || g.client == nil {
		return entities.PartsAvailabilityResult{}, ErrPartsGatewayNotConfigured
	}

	body := availabilityRequestBody{Items: make([]availabilityQueryBody, 0, len(items))}
	for _, it := range items {
		body.Items = append(body.Items, availabilityQueryBody{PartID: it.PartID, Quantity: it.Quantity})
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return entities.PartsAvailabilityResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/parts/check-availability", bytes.NewReader(payload))
	if err != nil {
		return entities.PartsAvailabilityResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[inventory][gateway] availability check failed err=%v", err)
		return entities.PartsAvailabilityResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[inventory][gateway] availability check answered status=%d", resp.StatusCode)
		return entities.PartsAvailabilityResult{}, fmt.Errorf("parts inventory answered status %d", resp.StatusCode)
	}

	var parsed availabilityResponseBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return entities.PartsAvailabilityResult{}, err
	}

	result := entities.PartsAvailabilityResult{
		AllAvailable:    parsed.AllAvailable,
		HasMissingParts: parsed.HasMissingParts,
		Items:           make([]entities.PartAvailability, 0, len(parsed.Items)),
	}
	for _, it := range parsed.Items {
		result.Items = append(result.Items, entities.PartAvailability{
			PartID:       it.PartID,
			Description:  it.Description,
			Requested:    it.Requested,
			CurrentStock: it.CurrentStock,
			Available:    it.Available,
		})
	}
	return result, nil
}

func (g *PartsHTTPGateway) GetPartStock(ctx context.Context, partID string) (entities.PartStock, error) {
	if g != nil && g.mockMode {
		log.Printf("[inventory][gateway] mock stock check part_id=%s", partID)
		return entities.PartStock{PartID: partID, CurrentStock: 999, Unit: "un"}, nil
	}
	if g == nil || g.client == nil {
		return entities.PartStock{}, ErrPartsGatewayNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/parts/"+url.PathEscape(partID)+"/stock", nil)
	if err != nil {
		return entities.PartStock{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[inventory][gateway] stock check failed part_id=%s err=%v", partID, err)
		return entities.PartStock{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[inventory][gateway] stock check answered part_id=%s status=%d", partID, resp.StatusCode)
		return entities.PartStock{}, fmt.Errorf("parts inventory answered status %d", resp.StatusCode)
	}

	var parsed stockResponseBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return entities.PartStock{}, err
	}
	return entities.PartStock{
		PartID:       parsed.PartID,
		CurrentStock: parsed.CurrentStock,
		Unit:         parsed.Unit,
	}, nil
}

func mockAvailability(items []entities.PartAvailabilityQuery) entities.PartsAvailabilityResult {
	result := entities.PartsAvailabilityResult{AllAvailable: true}
	for _, it := range items {
		result.Items = append(result.Items, entities.PartAvailability{
			PartID:       it.PartID,
			Requested:    it.Quantity,
			CurrentStock: 999,
			Available:    true,
		})
	}
	return result
}

func isPartsGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PARTS_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
