package cart

import (
	"KhajaGhar-Backend/entities"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CartRepository interface {
		// AddOrMergeLine merges the candidate into an existing line with the
		// same configuration (incrementing its quantity) or inserts it as a
		// new line. Match and write happen in one transaction under a
		// per-user advisory lock, so two concurrent identical adds cannot
		// both observe "no match" and both insert. The candidate is
		// overwritten with the affected line; the bool reports whether a
		// merge happened.
		AddOrMergeLine(ctx context.Context, candidate *entities.CartLine) (bool, error)

		GetLine(ctx context.Context, userID, lineID string) (*entities.CartLine, error)
		UpdateLineQuantity(ctx context.Context, userID, lineID string, quantity int) error
		DeleteLine(ctx context.Context, userID, lineID string) error
		ClearLines(ctx context.Context, userID string) error
		ListLines(ctx context.Context, userID string) ([]*entities.CartLine, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) AddOrMergeLine(ctx context.Context, candidate *entities.CartLine) (bool, error) {
	merged := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row locks alone cannot serialize two first inserts of the same
		// configuration (there is no row to lock yet), so take a per-user
		// advisory lock for the whole transaction before the lookup.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", candidate.UserID.String()).Error; err != nil {
			return err
		}

		var existing []*entities.CartLine
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND menu_item_id = ?", candidate.UserID, candidate.MenuItemID).
			Find(&existing).Error; err != nil {
			return err
		}

		if match := findMatchingLine(existing, candidate); match != nil {
			match.Quantity += candidate.Quantity
			if err := tx.Model(&entities.CartLine{}).
				Where("id = ?", match.ID).
				Update("quantity", match.Quantity).Error; err != nil {
				return err
			}
			*candidate = *match
			merged = true
			return nil
		}

		return tx.Create(candidate).Error
	})
	return merged, err
}

func (r *cartRepository) GetLine(ctx context.Context, userID, lineID string) (*entities.CartLine, error) {
	var line entities.CartLine
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) UpdateLineQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	res := r.db.WithContext(ctx).Model(&entities.CartLine{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, lineID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&entities.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearLines is idempotent: clearing an already empty cart succeeds.
func (r *cartRepository) ClearLines(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.CartLine{}).Error
}

func (r *cartRepository) ListLines(ctx context.Context, userID string) ([]*entities.CartLine, error) {
	var lines []*entities.CartLine
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
