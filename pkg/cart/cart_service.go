package cart

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/entities"
	"KhajaGhar-Backend/internal/utils"
	"KhajaGhar-Backend/pkg/catalog"
	"KhajaGhar-Backend/pkg/menu"
	"KhajaGhar-Backend/pkg/pricing"
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"strconv"
)

const (
	defaultDeliveryFee = 50
	defaultTaxRate     = 0.13
)

type (
	CartService interface {
		AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (*domain.AddCartItemResponse, error)
		UpdateQuantity(ctx context.Context, lineID string, quantity int, userID string) error
		RemoveLine(ctx context.Context, lineID string, userID string) error
		Clear(ctx context.Context, userID string) error
		ListLines(ctx context.Context, userID string) ([]*domain.CartLineView, error)
		Summarize(ctx context.Context, userID string) (*domain.CartSummaryResponse, error)
	}

	cartService struct {
		cartRepository CartRepository
		menuRepository menu.MenuRepository
		deliveryFee    decimal.Decimal
		taxRate        decimal.Decimal
	}
)

func NewCartService(cartRepository CartRepository, menuRepository menu.MenuRepository) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
		deliveryFee:    configDecimal("DELIVERY_FEE", defaultDeliveryFee),
		taxRate:        configDecimal("TAX_RATE", defaultTaxRate),
	}
}

func configDecimal(key string, fallback float64) decimal.Decimal {
	raw := utils.GetConfig(key)
	if raw == "" {
		return decimal.NewFromFloat(fallback)
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return decimal.NewFromFloat(fallback)
	}
	return decimal.NewFromFloat(parsed)
}

func (s *cartService) AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (*domain.AddCartItemResponse, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	menuItemUUID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	if item.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	spiceLevel := req.Customization.SpiceLevel
	if spiceLevel == "" {
		spiceLevel = catalog.DefaultSpiceLevel
	}
	if !catalog.ValidSpiceLevel(spiceLevel) {
		return nil, domain.ErrInvalidSpiceLevel
	}

	extras := make([]entities.CartLineExtra, 0, len(req.Customization.Extras))
	for _, extra := range req.Customization.Extras {
		if extra.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		extras = append(extras, entities.CartLineExtra{
			Group:     extra.Group,
			Label:     extra.Label,
			UnitPrice: extra.UnitPrice,
			Quantity:  extra.Quantity,
		})
	}

	candidate := &entities.CartLine{
		ID:                  uuid.New(),
		UserID:              userUUID,
		MenuItemID:          menuItemUUID,
		Quantity:            req.Quantity,
		ExtraCheese:         req.Customization.ExtraCheese,
		ExtraMeat:           req.Customization.ExtraMeat,
		ExtraVeggies:        req.Customization.ExtraVeggies,
		NoOnions:            req.Customization.NoOnions,
		NoGarlic:            req.Customization.NoGarlic,
		GlutenFree:          req.Customization.GlutenFree,
		SpiceLevel:          spiceLevel,
		SpecialInstructions: req.Customization.SpecialInstructions,
		Extras:              extras,
	}

	merged, err := s.cartRepository.AddOrMergeLine(ctx, candidate)
	if err != nil {
		return nil, err
	}

	return &domain.AddCartItemResponse{
		LineID:   candidate.ID.String(),
		Quantity: candidate.Quantity,
		Merged:   merged,
	}, nil
}

// UpdateQuantity sets the line quantity; a quantity below 1 removes the line,
// which is the same path the client takes when the user taps minus on a
// single-quantity line.
func (s *cartService) UpdateQuantity(ctx context.Context, lineID string, quantity int, userID string) error {
	if quantity < 1 {
		return s.RemoveLine(ctx, lineID, userID)
	}

	if err := s.cartRepository.UpdateLineQuantity(ctx, userID, lineID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLineNotFound
		}
		return err
	}
	return nil
}

func (s *cartService) RemoveLine(ctx context.Context, lineID string, userID string) error {
	if err := s.cartRepository.DeleteLine(ctx, userID, lineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLineNotFound
		}
		return err
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.cartRepository.ClearLines(ctx, userID)
}

func (s *cartService) ListLines(ctx context.Context, userID string) ([]*domain.CartLineView, error) {
	lines, err := s.cartRepository.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.CartLineView, 0, len(lines))
	for _, line := range lines {
		view, err := s.lineView(line)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Summarize derives the totals from the current lines on every call; nothing
// here is persisted, so the summary cannot drift from the line data.
func (s *cartService) Summarize(ctx context.Context, userID string) (*domain.CartSummaryResponse, error) {
	lines, err := s.cartRepository.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.MenuItem == nil {
			return nil, domain.ErrMenuItemNotFound
		}
		total, err := pricing.LineTotal(line.MenuItem, line)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(total)
	}

	deliveryFee := decimal.Zero
	tax := decimal.Zero
	if subtotal.IsPositive() {
		deliveryFee = s.deliveryFee
		tax = subtotal.Mul(s.taxRate).Round(2)
	}
	grandTotal := subtotal.Add(deliveryFee).Add(tax).Round(2)

	return &domain.CartSummaryResponse{
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: deliveryFee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		GrandTotal:  grandTotal.InexactFloat64(),
	}, nil
}

func (s *cartService) lineView(line *entities.CartLine) (*domain.CartLineView, error) {
	item := line.MenuItem
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}

	unit, err := pricing.UnitPrice(item, line)
	if err != nil {
		return nil, err
	}
	total, err := pricing.LineTotal(item, line)
	if err != nil {
		return nil, err
	}

	extras := make([]domain.CartExtraView, 0, len(line.Extras))
	for _, extra := range line.Extras {
		extras = append(extras, domain.CartExtraView{
			Group:     extra.Group,
			Label:     extra.Label,
			UnitPrice: extra.UnitPrice,
			Quantity:  extra.Quantity,
		})
	}

	return &domain.CartLineView{
		LineID:              line.ID.String(),
		MenuItemID:          line.MenuItemID.String(),
		Name:                item.Name,
		ImageURL:            item.ImageURL,
		BasePrice:           item.Price,
		ExtraCheese:         line.ExtraCheese,
		ExtraMeat:           line.ExtraMeat,
		ExtraVeggies:        line.ExtraVeggies,
		NoOnions:            line.NoOnions,
		NoGarlic:            line.NoGarlic,
		GlutenFree:          line.GlutenFree,
		SpiceLevel:          line.SpiceLevel,
		SpecialInstructions: line.SpecialInstructions,
		Extras:              extras,
		Quantity:            line.Quantity,
		UnitPrice:           unit.Round(2).InexactFloat64(),
		LineTotal:           total.InexactFloat64(),
	}, nil
}
