package postgres

import (
	"context"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

var _ gym.FeedRepository = (*FeedRepository)(nil)

// FeedRepository implements gym.FeedRepository using sqlx
type FeedRepository struct {
	db DBTX
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db DBTX) *FeedRepository {
	return &FeedRepository{db: db}
}

// RecentPosts returns the newest feed posts for moderation.
func (r *FeedRepository) RecentPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	var posts []domain.Post

	q := `
		SELECT p.id, COALESCE(m.name, 'desconocido') AS author_name,
		       p.content, p.is_hidden, p.created_at
		FROM feed_posts p
		LEFT JOIN members m ON m.id = p.author_id
		ORDER BY p.created_at DESC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &posts, q, limit); err != nil {
		return nil, errors.Wrap(err, "failed to load recent posts")
	}

	return posts, nil
}

// HidePost marks a post as hidden. Hiding an already hidden post is a no-op.
func (r *FeedRepository) HidePost(ctx context.Context, postID string) error {
	q := `UPDATE feed_posts SET is_hidden = TRUE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, q, postID)
	if err != nil {
		return errors.Wrap(err, "failed to hide post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to check moderation result")
	}
	if affected == 0 {
		return errors.Wrap(errors.ErrNotFound, "post not found")
	}

	return nil
}
