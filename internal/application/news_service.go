package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	repo "github.com/oksasatya/go-newsroom/internal/domain/repository"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// NewsIndex is an optional full-text index kept next to the store.
// It is best effort: failures never undo or fail a store mutation.
type NewsIndex interface {
	Index(ctx context.Context, n *entity.NewsItem) error
	Remove(ctx context.Context, id string) error
	// Search returns matching news ids, best match first.
	Search(ctx context.Context, query string, size int) ([]string, error)
}

const searchLimit = 20

// NewsService manages news items and their comments. Only the author may edit or
// delete an item; anyone authenticated may comment.
type NewsService struct {
	Store repo.StoreRepository
	Clock helpers.Clock
	Index NewsIndex
}

func NewNewsService(store repo.StoreRepository, clock helpers.Clock, index NewsIndex) *NewsService {
	if clock == nil {
		clock = helpers.RealClock{}
	}
	return &NewsService{Store: store, Clock: clock, Index: index}
}

type NewsInput struct {
	Title    string
	Body     string
	Category entity.Category
}

// NewsPatch holds the fields to change; nil fields are left alone.
type NewsPatch struct {
	Title    *string
	Body     *string
	Category *entity.Category
}

func (s *NewsService) CreateNews(ctx context.Context, in NewsInput, authorID, authorName string) (*entity.NewsItem, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Clock.NowUTC()
	n := entity.NewsItem{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Body:       in.Body,
		Category:   in.Category,
		AuthorID:   authorID,
		AuthorName: authorName,
		Comments:   []entity.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	snap.Data.News = append(snap.Data.News, n)
	if err := s.save(ctx, snap.Data); err != nil {
		return nil, err
	}
	s.reindex(ctx, &n)
	return &n, nil
}

// ListNews returns items newest first. An empty category or "All" returns everything.
func (s *NewsService) ListNews(ctx context.Context, category entity.Category) ([]entity.NewsItem, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	items := snap.Data.News
	if category != "" && category != entity.CategoryAll {
		filtered := make([]entity.NewsItem, 0, len(items))
		for _, n := range items {
			if n.Category == category {
				filtered = append(filtered, n)
			}
		}
		items = filtered
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *NewsService) GetNews(ctx context.Context, id string) (*entity.NewsItem, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := snap.Data.NewsIndex(id)
	if i < 0 {
		return nil, newsNotFound(id)
	}
	n := snap.Data.News[i]
	return &n, nil
}

func (s *NewsService) UpdateNews(ctx context.Context, id string, patch NewsPatch, actingUserID string) (*entity.NewsItem, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *patch.Category)
	}
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := snap.Data.NewsIndex(id)
	if i < 0 {
		return nil, newsNotFound(id)
	}
	n := &snap.Data.News[i]
	if n.AuthorID != actingUserID {
		return nil, fmt.Errorf("%w: only the author can edit this news", ErrUnauthorized)
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Body != nil {
		n.Body = *patch.Body
	}
	if patch.Category != nil {
		n.Category = *patch.Category
	}
	n.UpdatedAt = s.Clock.NowUTC()
	if err := s.save(ctx, snap.Data); err != nil {
		return nil, err
	}
	out := *n
	s.reindex(ctx, &out)
	return &out, nil
}

// DeleteNews removes the item and its comments. Only the author may do this.
func (s *NewsService) DeleteNews(ctx context.Context, id, actingUserID string) error {
	return s.deleteNews(ctx, id, func(n *entity.NewsItem) error {
		if n.AuthorID != actingUserID {
			return fmt.Errorf("%w: only the author can delete this news", ErrUnauthorized)
		}
		return nil
	})
}

// ForceDeleteNews removes the item regardless of author. Callers must have already
// established the actor is an admin.
func (s *NewsService) ForceDeleteNews(ctx context.Context, id string) error {
	return s.deleteNews(ctx, id, nil)
}

func (s *NewsService) deleteNews(ctx context.Context, id string, allow func(*entity.NewsItem) error) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := snap.Data.NewsIndex(id)
	if i < 0 {
		return newsNotFound(id)
	}
	if allow != nil {
		if err := allow(&snap.Data.News[i]); err != nil {
			return err
		}
	}
	snap.Data.News = append(snap.Data.News[:i], snap.Data.News[i+1:]...)
	if err := s.save(ctx, snap.Data); err != nil {
		return err
	}
	if s.Index != nil {
		_ = s.Index.Remove(ctx, id)
	}
	return nil
}

// AddComment appends a comment and bumps the item's UpdatedAt.
func (s *NewsService) AddComment(ctx context.Context, newsID, body, userID, userName string) (*entity.NewsItem, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := snap.Data.NewsIndex(newsID)
	if i < 0 {
		return nil, newsNotFound(newsID)
	}
	now := s.Clock.NowUTC()
	n := &snap.Data.News[i]
	n.Comments = append(n.Comments, entity.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Body:      body,
		CreatedAt: now,
	})
	n.UpdatedAt = now
	if err := s.save(ctx, snap.Data); err != nil {
		return nil, err
	}
	out := *n
	s.reindex(ctx, &out)
	return &out, nil
}

// SearchNews matches query against titles and bodies, case-insensitively.
// With an index configured the index ranks the results; ids it returns that are no
// longer in the store are dropped. Without one, or when the index yields nothing
// usable, results come from a scan, newest first.
func (s *NewsService) SearchNews(ctx context.Context, query string) ([]entity.NewsItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.NewsItem{}, nil
	}
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.Index != nil {
		ids, err := s.Index.Search(ctx, query, searchLimit)
		if err == nil {
			out := make([]entity.NewsItem, 0, len(ids))
			for _, id := range ids {
				if i := snap.Data.NewsIndex(id); i >= 0 {
					out = append(out, snap.Data.News[i])
				}
			}
			if len(out) > 0 {
				return out, nil
			}
		}
		// scan when the index is down or knows nothing the store still holds
	}

	q := strings.ToLower(query)
	out := make([]entity.NewsItem, 0)
	for _, n := range snap.Data.News {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Body), q) {
			out = append(out, n)
		}
	}
	sortNewestFirst(out)
	if len(out) > searchLimit {
		out = out[:searchLimit]
	}
	return out, nil
}

// ReindexAll pushes every stored item to the index, so items written while the index
// was absent or failing become searchable. It returns how many were indexed; the first
// index error is returned after all items have been tried.
func (s *NewsService) ReindexAll(ctx context.Context) (int, error) {
	if s.Index == nil {
		return 0, nil
	}
	snap, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	var (
		indexed  int
		firstErr error
	)
	for i := range snap.Data.News {
		if err := s.Index.Index(ctx, &snap.Data.News[i]); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("index news %s: %w", snap.Data.News[i].ID, err)
			}
			continue
		}
		indexed++
	}
	return indexed, firstErr
}

func (s *NewsService) load(ctx context.Context) (repo.Snapshot, error) {
	snap, err := s.Store.Load(ctx)
	if err != nil {
		return repo.Snapshot{}, fmt.Errorf("load store: %w", err)
	}
	return snap, nil
}

func (s *NewsService) save(ctx context.Context, data *entity.Store) error {
	if err := s.Store.Save(ctx, data); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

func (s *NewsService) reindex(ctx context.Context, n *entity.NewsItem) {
	if s.Index != nil {
		_ = s.Index.Index(ctx, n)
	}
}

// sortNewestFirst orders by CreatedAt descending; equal times keep store order.
func sortNewestFirst(items []entity.NewsItem) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].CreatedAt.After(items[b].CreatedAt)
	})
}

func newsNotFound(id string) error {
	return fmt.Errorf("news %s: %w", id, ErrNotFound)
}
