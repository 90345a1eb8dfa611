package blogs

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	FindOne(ctx context.Context, f Filter) (*models.Blog, error)
	Select(ctx context.Context, f Filter) ([]models.Blog, error)
	Count(ctx context.Context, f Filter) (int64, error)
	UpdateOwned(ctx context.Context, id, userID, categoryID, title, description string) (*models.Blog, error)
	DeleteOwned(ctx context.Context, id, userID, categoryID string) (*models.Blog, error)
}
