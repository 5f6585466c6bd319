package catalog

import (
	"errors"
	"strings"

	"cleanmarket/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidPricingModel = errors.New("invalid pricing model")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidArea         = errors.New("area must be positive")
	ErrInvalidAreaRange    = errors.New("min area must not exceed max area")
)

// PricingModel selects the formula for a service's base price.
type PricingModel string

const (
	// AreaRange prices through a fixed tier chosen by the client.
	AreaRange PricingModel = "area_range"
	// PricePerMeter prices as price_per_meter × area.
	PricePerMeter PricingModel = "price_per_meter"
)

func NewPricingModel(s string) (PricingModel, error) {
	switch PricingModel(s) {
	case AreaRange, PricePerMeter:
		return PricingModel(s), nil
	default:
		return "", ErrInvalidPricingModel
	}
}

// Service is immutable reference data; mutation happens only through the
// admin layer, which is outside this core.
type Service struct {
	id            uuid.UUID
	name          string
	pricingModel  PricingModel
	pricePerMeter money.Money // meaningful only for PricePerMeter
	minArea       *int64      // optional floor for PricePerMeter
	currency      money.Currency
}

func NewService(
	id uuid.UUID,
	name string,
	model PricingModel,
	pricePerMeter money.Money,
	minArea *int64,
	currency money.Currency,
) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if minArea != nil && *minArea <= 0 {
		return nil, ErrInvalidArea
	}

	return &Service{
		id:            id,
		name:          name,
		pricingModel:  model,
		pricePerMeter: pricePerMeter,
		minArea:       minArea,
		currency:      currency,
	}, nil
}

func (s *Service) ID() uuid.UUID              { return s.id }
func (s *Service) Name() string               { return s.name }
func (s *Service) PricingModel() PricingModel { return s.pricingModel }
func (s *Service) PricePerMeter() money.Money { return s.pricePerMeter }
func (s *Service) MinArea() *int64            { return s.minArea }
func (s *Service) Currency() money.Currency   { return s.currency }

// PricingTier is a fixed price for an area band of an AreaRange service.
type PricingTier struct {
	id        uuid.UUID
	serviceID uuid.UUID
	minArea   int64
	maxArea   int64
	amount    money.Money
}

func NewPricingTier(id, serviceID uuid.UUID, minArea, maxArea int64, amount money.Money) (*PricingTier, error) {
	if minArea <= 0 || maxArea <= 0 {
		return nil, ErrInvalidArea
	}
	if minArea > maxArea {
		return nil, ErrInvalidAreaRange
	}

	return &PricingTier{
		id:        id,
		serviceID: serviceID,
		minArea:   minArea,
		maxArea:   maxArea,
		amount:    amount,
	}, nil
}

func (p *PricingTier) ID() uuid.UUID        { return p.id }
func (p *PricingTier) ServiceID() uuid.UUID { return p.serviceID }
func (p *PricingTier) MinArea() int64       { return p.minArea }
func (p *PricingTier) MaxArea() int64       { return p.maxArea }
func (p *PricingTier) Amount() money.Money  { return p.amount }

// Extra is an add-on charge attached to a booking.
type Extra struct {
	id     uuid.UUID
	name   string
	amount money.Money
}

func NewExtra(id uuid.UUID, name string, amount money.Money) (*Extra, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Extra{id: id, name: name, amount: amount}, nil
}

func (e *Extra) ID() uuid.UUID       { return e.id }
func (e *Extra) Name() string        { return e.name }
func (e *Extra) Amount() money.Money { return e.amount }
