package postgres

import (
	"context"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

var _ gym.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository implements gym.DashboardRepository using sqlx
type DashboardRepository struct {
	db DBTX
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db DBTX) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats aggregates the gym-wide overview counters in one query.
func (r *DashboardRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	q := `
		SELECT
			(SELECT COUNT(*) FROM members) AS total_members,
			(SELECT COUNT(*) FROM trainers) AS total_trainers,
			(SELECT COUNT(*) FROM members
			 WHERE created_at >= date_trunc('month', NOW())) AS new_members_this_month,
			(SELECT COUNT(*) FROM checkins
			 WHERE created_at >= date_trunc('day', NOW())) AS checkins_today,
			(SELECT COUNT(*) FROM feed_posts WHERE NOT is_hidden) AS visible_posts`

	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard stats")
	}

	return &stats, nil
}
