package repomanager

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
)

// InMemoryRepositoryManager is a map-backed store with the same observable
// semantics as the postgres one, including the RESTRICT behavior on deletes
// and the scoped-predicate matching of the filter composer. Used by tests and
// local experimentation; it never opens a connection.
type InMemoryRepositoryManager struct {
	mu sync.Mutex

	users      map[string]models.User
	categories map[string]models.Category
	blogs      map[string]models.Blog
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:      map[string]models.User{},
		categories: map[string]models.Category{},
		blogs:      map[string]models.Blog{},
	}
}

func (m *InMemoryRepositoryManager) Conn(ctx context.Context) (dbx.DBTX, error) {
	return nil, nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return &inMemoryUsers{m: m}
}

func (m *InMemoryRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return &inMemoryCategories{m: m}
}

func (m *InMemoryRepositoryManager) Blogs(db dbx.DBTX) blogs.Repository {
	return &inMemoryBlogs{m: m}
}

// now hands out strictly increasing timestamps so creation order is total
// even when records are created within the same wall-clock tick.
var (
	nowMu   sync.Mutex
	lastNow time.Time
)

func now() time.Time {
	nowMu.Lock()
	defer nowMu.Unlock()

	t := time.Now().UTC()
	if !t.After(lastNow) {
		t = lastNow.Add(time.Microsecond)
	}
	lastNow = t
	return t
}

type inMemoryUsers struct {
	m *InMemoryRepositoryManager
}

func (r *inMemoryUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.users {
		if existing.Username == user.Username {
			return nil, common.ErrorAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = now()
	r.m.users[user.ID] = *user
	return user, nil
}

func (r *inMemoryUsers) List(ctx context.Context) ([]models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	result := make([]models.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *inMemoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	user, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &user, nil
}

func (r *inMemoryUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *inMemoryUsers) UpdateUsername(ctx context.Context, id string, username string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	user, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for otherID, other := range r.m.users {
		if otherID != id && other.Username == username {
			return nil, common.ErrorAlreadyExists
		}
	}
	user.Username = username
	r.m.users[id] = user
	return &user, nil
}

func (r *inMemoryUsers) Delete(ctx context.Context, id string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	user, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, c := range r.m.categories {
		if c.UserID == id {
			return nil, common.ErrorHasDependents
		}
	}
	for _, b := range r.m.blogs {
		if b.UserID == id {
			return nil, common.ErrorHasDependents
		}
	}
	delete(r.m.users, id)
	return &user, nil
}

type inMemoryCategories struct {
	m *InMemoryRepositoryManager
}

func (r *inMemoryCategories) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	category.ID = uuid.NewString()
	category.CreatedAt = now()
	r.m.categories[category.ID] = *category
	return category, nil
}

func (r *inMemoryCategories) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var result []models.Category
	for _, c := range r.m.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *inMemoryCategories) GetByID(ctx context.Context, id string) (*models.Category, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	category, ok := r.m.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &category, nil
}

func (r *inMemoryCategories) UpdateOwned(ctx context.Context, id, userID, title string) (*models.Category, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	category, ok := r.m.categories[id]
	if !ok || category.UserID != userID {
		return nil, common.ErrorNotFound
	}
	category.Title = title
	r.m.categories[id] = category
	return &category, nil
}

func (r *inMemoryCategories) DeleteOwned(ctx context.Context, id, userID string) (*models.Category, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	category, ok := r.m.categories[id]
	if !ok || category.UserID != userID {
		return nil, common.ErrorNotFound
	}
	for _, b := range r.m.blogs {
		if b.CategoryID == id {
			return nil, common.ErrorHasDependents
		}
	}
	delete(r.m.categories, id)
	return &category, nil
}

type inMemoryBlogs struct {
	m *InMemoryRepositoryManager
}

func (r *inMemoryBlogs) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	blog.ID = uuid.NewString()
	blog.CreatedAt = now()
	r.m.blogs[blog.ID] = *blog
	return blog, nil
}

func matches(b models.Blog, f blogs.Filter) bool {
	if b.UserID != f.UserID || b.CategoryID != f.CategoryID {
		return false
	}
	if f.BlogID != "" && b.ID != f.BlogID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.Description), needle) {
			return false
		}
	}
	if f.StartDate != nil && b.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && b.CreatedAt.After(*f.EndDate) {
		return false
	}
	return true
}

func (r *inMemoryBlogs) selectAll(f blogs.Filter) []models.Blog {
	var result []models.Blog
	for _, b := range r.m.blogs {
		if matches(b, f) {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result
}

func (r *inMemoryBlogs) FindOne(ctx context.Context, f blogs.Filter) (*models.Blog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	all := r.selectAll(f)
	if len(all) == 0 {
		return nil, common.ErrorNotFound
	}
	return &all[0], nil
}

func (r *inMemoryBlogs) Select(ctx context.Context, f blogs.Filter) ([]models.Blog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	all := r.selectAll(f)
	size := f.Size
	if size < 1 {
		size = blogs.DefaultSize
	}
	page := f.Page
	if page < 1 {
		page = blogs.DefaultPage
	}
	skip := (page - 1) * size
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *inMemoryBlogs) Count(ctx context.Context, f blogs.Filter) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	return int64(len(r.selectAll(f))), nil
}

func (r *inMemoryBlogs) UpdateOwned(ctx context.Context, id, userID, categoryID, title, description string) (*models.Blog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	blog, ok := r.m.blogs[id]
	if !ok || blog.UserID != userID || blog.CategoryID != categoryID {
		return nil, common.ErrorNotFound
	}
	blog.Title = title
	blog.Description = description
	r.m.blogs[id] = blog
	return &blog, nil
}

func (r *inMemoryBlogs) DeleteOwned(ctx context.Context, id, userID, categoryID string) (*models.Blog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	blog, ok := r.m.blogs[id]
	if !ok || blog.UserID != userID || blog.CategoryID != categoryID {
		return nil, common.ErrorNotFound
	}
	delete(r.m.blogs, id)
	return &blog, nil
}
