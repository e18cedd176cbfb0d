package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

var _ gym.NoticeRepository = (*NoticeRepository)(nil)

// NoticeRepository implements gym.NoticeRepository using sqlx
type NoticeRepository struct {
	db DBTX
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db DBTX) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create stores a notice. A nil member ID means the notice is for everyone.
func (r *NoticeRepository) Create(ctx context.Context, notice domain.Notice) (*domain.Notice, error) {
	notice.ID = uuid.New().String()
	notice.CreatedAt = time.Now().UTC()

	q := `
		INSERT INTO notices (id, title, message, priority, member_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, q,
		notice.ID, notice.Title, notice.Message, notice.Priority,
		notice.MemberID, notice.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store notice")
	}

	return &notice, nil
}
