package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

var _ gym.DietRepository = (*DietRepository)(nil)

// DietRepository implements gym.DietRepository using sqlx
type DietRepository struct {
	db DBTX
}

// NewDietRepository creates a new diet repository
func NewDietRepository(db DBTX) *DietRepository {
	return &DietRepository{db: db}
}

// SavePlan stores a rendered nutrition program for a member.
func (r *DietRepository) SavePlan(ctx context.Context, plan domain.DietPlan) (*domain.DietPlan, error) {
	plan.ID = uuid.New().String()
	plan.CreatedAt = time.Now().UTC()

	q := `
		INSERT INTO diet_plans (
			id, member_id, goal, weight_kg, calories, protein_g, fat_g, carbs_g,
			content, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, q,
		plan.ID, plan.MemberID, plan.Macros.Goal, plan.Macros.WeightKg,
		plan.Macros.Calories, plan.Macros.ProteinG, plan.Macros.FatG, plan.Macros.CarbsG,
		plan.Content, plan.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store diet plan")
	}

	return &plan, nil
}
