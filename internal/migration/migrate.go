package migration

import (
	"gorm.io/gorm"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/pkg/logger"
)

// Run migrates all models. The unique indexes created here back the
// duplicate checks in the services: friend pair, wishlist and gift
// names per owner, implication composite key.
func Run(db *gorm.DB) error {
	models := []any{
		&domain.User{},
		&domain.FriendEdge{},
		&domain.Wishlist{},
		&domain.Item{},
		&domain.ItemWishlist{},
		&domain.Gift{},
		&domain.GiftImplication{},
		&domain.UserSession{},
		&domain.RevokedToken{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return err
	}
	logger.Get().Info().Int("models", len(models)).Msg("database migration complete")
	return nil
}
