package categories

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	ListByUser(ctx context.Context, userID string) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	UpdateOwned(ctx context.Context, id, userID, title string) (*models.Category, error)
	DeleteOwned(ctx context.Context, id, userID string) (*models.Category, error)
}
