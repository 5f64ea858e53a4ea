package cart

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/entities"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockMenuRepository struct {
	items map[string]*entities.MenuItem
}

func (m *mockMenuRepository) AddMenuItem(_ context.Context, item *entities.MenuItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockMenuRepository) GetMenuItemByID(_ context.Context, id string) (*entities.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockMenuRepository) UpdateMenuItem(_ context.Context, item *entities.MenuItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockMenuRepository) DeleteMenuItem(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockMenuRepository) GetMenuItems(_ context.Context, _ string, _, _ int) ([]*entities.MenuItem, int64, error) {
	items := make([]*entities.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, int64(len(items)), nil
}

// mockCartRepository keeps lines in memory and mirrors the matching semantics
// of the real repository; the mutex stands in for the per-user advisory lock
// that serializes concurrent adds there.
type mockCartRepository struct {
	mu    sync.Mutex
	lines []*entities.CartLine
	menu  *mockMenuRepository
}

func (m *mockCartRepository) AddOrMergeLine(_ context.Context, candidate *entities.CartLine) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sameItem []*entities.CartLine
	for _, line := range m.lines {
		if line.UserID == candidate.UserID && line.MenuItemID == candidate.MenuItemID {
			sameItem = append(sameItem, line)
		}
	}
	if match := findMatchingLine(sameItem, candidate); match != nil {
		match.Quantity += candidate.Quantity
		*candidate = *match
		return true, nil
	}
	m.lines = append(m.lines, candidate)
	return false, nil
}

func (m *mockCartRepository) GetLine(_ context.Context, userID, lineID string) (*entities.CartLine, error) {
	for _, line := range m.lines {
		if line.ID.String() == lineID && line.UserID.String() == userID {
			return line, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCartRepository) UpdateLineQuantity(_ context.Context, userID, lineID string, quantity int) error {
	for _, line := range m.lines {
		if line.ID.String() == lineID && line.UserID.String() == userID {
			line.Quantity = quantity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCartRepository) DeleteLine(_ context.Context, userID, lineID string) error {
	for i, line := range m.lines {
		if line.ID.String() == lineID && line.UserID.String() == userID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCartRepository) ClearLines(_ context.Context, userID string) error {
	kept := m.lines[:0]
	for _, line := range m.lines {
		if line.UserID.String() != userID {
			kept = append(kept, line)
		}
	}
	m.lines = kept
	return nil
}

func (m *mockCartRepository) ListLines(_ context.Context, userID string) ([]*entities.CartLine, error) {
	var out []*entities.CartLine
	for _, line := range m.lines {
		if line.UserID.String() == userID {
			if line.MenuItem == nil && m.menu != nil {
				line.MenuItem = m.menu.items[line.MenuItemID.String()]
			}
			out = append(out, line)
		}
	}
	return out, nil
}

func newTestService(items ...*entities.MenuItem) (CartService, *mockCartRepository) {
	menuRepo := &mockMenuRepository{items: map[string]*entities.MenuItem{}}
	for _, item := range items {
		menuRepo.items[item.ID.String()] = item
	}
	cartRepo := &mockCartRepository{menu: menuRepo}
	return NewCartService(cartRepo, menuRepo), cartRepo
}

func momoItem() *entities.MenuItem {
	return &entities.MenuItem{
		ID:          uuid.New(),
		Name:        "Chicken Momo",
		Price:       200,
		Category:    "momo",
		IsAvailable: true,
	}
}

func TestAddItemMergesIdenticalSelection(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	req := domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   2,
		Customization: domain.CustomizationRequest{
			ExtraCheese: true,
			SpiceLevel:  "Spicy",
		},
	}

	first, err := service.AddItem(ctx, req, userID)
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if first.Merged {
		t.Error("first AddItem() should not report a merge")
	}

	req.Quantity = 1
	second, err := service.AddItem(ctx, req, userID)
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if !second.Merged {
		t.Error("second AddItem() with identical selection should merge")
	}
	if second.LineID != first.LineID {
		t.Errorf("merge produced a new line: %s != %s", second.LineID, first.LineID)
	}
	if second.Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", second.Quantity)
	}
	if len(repo.lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(repo.lines))
	}

	summary, err := service.Summarize(ctx, userID)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if summary.Subtotal != 705.00 {
		t.Errorf("subtotal = %v, want 705.00", summary.Subtotal)
	}
}

func TestAddItemConcurrentIdenticalSelections(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	req := domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
		Customization: domain.CustomizationRequest{
			ExtraMeat:  true,
			SpiceLevel: "Spicy",
		},
	}

	// Concurrent identical adds for a configuration the cart has never seen:
	// every call must funnel into one line, never two.
	const adds = 8
	var wg sync.WaitGroup
	errs := make(chan error, adds)
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.AddItem(ctx, req, userID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if len(repo.lines) != 1 {
		t.Fatalf("cart has %d lines after %d concurrent identical adds, want 1", len(repo.lines), adds)
	}
	if repo.lines[0].Quantity != adds {
		t.Errorf("merged quantity = %d, want %d", repo.lines[0].Quantity, adds)
	}
}

func TestAddItemDifferentInstructionsKeepSeparateLines(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	req := domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
		Customization: domain.CustomizationRequest{
			SpecialInstructions: "less oil",
		},
	}
	if _, err := service.AddItem(ctx, req, userID); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	req.Customization.SpecialInstructions = "extra oil"
	resp, err := service.AddItem(ctx, req, userID)
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if resp.Merged {
		t.Error("differing special instructions must not merge")
	}
	if len(repo.lines) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(repo.lines))
	}
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, _ := newTestService(item)
	userID := uuid.New().String()

	tests := []struct {
		name    string
		req     domain.AddCartItemRequest
		userID  string
		wantErr error
	}{
		{
			name:    "zero quantity",
			req:     domain.AddCartItemRequest{MenuItemID: item.ID.String(), Quantity: 0},
			userID:  userID,
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "unknown menu item",
			req:     domain.AddCartItemRequest{MenuItemID: uuid.New().String(), Quantity: 1},
			userID:  userID,
			wantErr: domain.ErrMenuItemNotFound,
		},
		{
			name:    "malformed menu item id",
			req:     domain.AddCartItemRequest{MenuItemID: "not-a-uuid", Quantity: 1},
			userID:  userID,
			wantErr: domain.ErrParseUUID,
		},
		{
			name:    "malformed user id",
			req:     domain.AddCartItemRequest{MenuItemID: item.ID.String(), Quantity: 1},
			userID:  "not-a-uuid",
			wantErr: domain.ErrParseUUID,
		},
		{
			name: "unknown spice level",
			req: domain.AddCartItemRequest{
				MenuItemID:    item.ID.String(),
				Quantity:      1,
				Customization: domain.CustomizationRequest{SpiceLevel: "Nuclear"},
			},
			userID:  userID,
			wantErr: domain.ErrInvalidSpiceLevel,
		},
		{
			name: "extra with zero quantity",
			req: domain.AddCartItemRequest{
				MenuItemID: item.ID.String(),
				Quantity:   1,
				Customization: domain.CustomizationRequest{
					Extras: []domain.CartExtraRequest{{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 0}},
				},
			},
			userID:  userID,
			wantErr: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.AddItem(ctx, tt.req, tt.userID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddItemDefaultsSpiceLevel(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	_, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
	}, userID)
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}
	if repo.lines[0].SpiceLevel != "Medium" {
		t.Errorf("spice level = %q, want Medium", repo.lines[0].SpiceLevel)
	}
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	resp, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   2,
	}, userID)
	if err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if err := service.UpdateQuantity(ctx, resp.LineID, 0, userID); err != nil {
		t.Fatalf("UpdateQuantity(0) unexpected error: %v", err)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("cart has %d lines after removal, want 0", len(repo.lines))
	}

	if err := service.UpdateQuantity(ctx, resp.LineID, 2, userID); !errors.Is(err, domain.ErrLineNotFound) {
		t.Errorf("UpdateQuantity() on removed line error = %v, want %v", err, domain.ErrLineNotFound)
	}
}

func TestRemoveLineUnknownID(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(momoItem())

	err := service.RemoveLine(ctx, uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrLineNotFound) {
		t.Errorf("RemoveLine() error = %v, want %v", err, domain.ErrLineNotFound)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	if _, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
	}, userID); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	if err := service.Clear(ctx, userID); err != nil {
		t.Fatalf("Clear() unexpected error: %v", err)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("cart has %d lines after clear, want 0", len(repo.lines))
	}

	// Clearing an already empty cart still succeeds.
	if err := service.Clear(ctx, userID); err != nil {
		t.Fatalf("Clear() on empty cart unexpected error: %v", err)
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	summary, err := service.Summarize(ctx, uuid.New().String())
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if summary.Subtotal != 0 || summary.DeliveryFee != 0 || summary.Tax != 0 || summary.GrandTotal != 0 {
		t.Errorf("empty cart summary = %+v, want all zero", summary)
	}
}

func TestSummarizeMissingMenuItem(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, repo := newTestService(item)
	userID := uuid.New().String()

	if _, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
	}, userID); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	// Menu row gone out of band; the line's association can no longer load.
	delete(repo.menu.items, item.ID.String())
	repo.lines[0].MenuItem = nil

	if _, err := service.Summarize(ctx, userID); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Errorf("Summarize() error = %v, want %v", err, domain.ErrMenuItemNotFound)
	}
}

func TestSummarizeAppliesFeeAndTax(t *testing.T) {
	ctx := context.Background()
	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        "Sel Roti",
		Price:       100,
		Category:    "snacks",
		IsAvailable: true,
	}
	service, _ := newTestService(item)
	userID := uuid.New().String()

	if _, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   1,
	}, userID); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	summary, err := service.Summarize(ctx, userID)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if summary.Subtotal != 100.00 {
		t.Errorf("subtotal = %v, want 100.00", summary.Subtotal)
	}
	if summary.DeliveryFee != 50.00 {
		t.Errorf("delivery fee = %v, want 50.00", summary.DeliveryFee)
	}
	if summary.Tax != 13.00 {
		t.Errorf("tax = %v, want 13.00", summary.Tax)
	}
	if summary.GrandTotal != 163.00 {
		t.Errorf("grand total = %v, want 163.00", summary.GrandTotal)
	}
}

func TestListLinesBuildsViews(t *testing.T) {
	ctx := context.Background()
	item := momoItem()
	service, _ := newTestService(item)
	userID := uuid.New().String()

	if _, err := service.AddItem(ctx, domain.AddCartItemRequest{
		MenuItemID: item.ID.String(),
		Quantity:   2,
		Customization: domain.CustomizationRequest{
			ExtraCheese: true,
			Extras: []domain.CartExtraRequest{
				{Group: "dip_sauce", Label: "Jhol Achar", UnitPrice: 25, Quantity: 1},
			},
		},
	}, userID); err != nil {
		t.Fatalf("AddItem() unexpected error: %v", err)
	}

	views, err := service.ListLines(ctx, userID)
	if err != nil {
		t.Fatalf("ListLines() unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("ListLines() returned %d views, want 1", len(views))
	}

	view := views[0]
	if view.Name != "Chicken Momo" {
		t.Errorf("view name = %q, want Chicken Momo", view.Name)
	}
	if view.UnitPrice != 260.00 { // 200 + 35 cheese + 25 achar
		t.Errorf("unit price = %v, want 260.00", view.UnitPrice)
	}
	if view.LineTotal != 520.00 {
		t.Errorf("line total = %v, want 520.00", view.LineTotal)
	}
	if len(view.Extras) != 1 || view.Extras[0].Label != "Jhol Achar" {
		t.Errorf("extras not carried into view: %+v", view.Extras)
	}
}
