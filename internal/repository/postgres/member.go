package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// Compile-time check that we implement the interface
var _ gym.MemberRepository = (*MemberRepository)(nil)

// MemberRepository implements gym.MemberRepository using sqlx
type MemberRepository struct {
	db DBTX
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

// Search finds members by name or email, case-insensitive.
func (r *MemberRepository) Search(ctx context.Context, query string) ([]domain.Member, error) {
	var members []domain.Member

	q := `
		SELECT m.id, m.name, m.email, m.trainer_id, t.name AS trainer_name,
		       m.created_at, m.last_seen_at
		FROM members m
		LEFT JOIN trainers t ON t.id = m.trainer_id
		WHERE m.name ILIKE '%' || $1 || '%' OR m.email ILIKE '%' || $1 || '%'
		ORDER BY m.name
		LIMIT 20`

	if err := r.db.SelectContext(ctx, &members, q, query); err != nil {
		return nil, errors.Wrap(err, "failed to search members")
	}

	return members, nil
}

// Summary aggregates the member profile with trainer, weight, plan and
// checkin information.
func (r *MemberRepository) Summary(ctx context.Context, memberID string) (*domain.MemberSummary, error) {
	var member domain.Member

	q := `
		SELECT m.id, m.name, m.email, m.trainer_id, t.name AS trainer_name,
		       m.created_at, m.last_seen_at
		FROM members m
		LEFT JOIN trainers t ON t.id = m.trainer_id
		WHERE m.id = $1`

	err := r.db.GetContext(ctx, &member, q, memberID)
	if err == sql.ErrNoRows {
		return nil, errors.Wrap(errors.ErrNotFound, "member not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load member")
	}

	summary := &domain.MemberSummary{Member: member}
	if member.TrainerName != nil {
		summary.TrainerName = *member.TrainerName
	}

	weight, err := r.LatestWeight(ctx, memberID)
	if err == nil {
		summary.CurrentWeightKg = weight
	} else if !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	planQuery := `
		SELECT COALESCE(diet_title, ''), COALESCE(routine_title, '')
		FROM member_plans
		WHERE member_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err = r.db.QueryRowContext(ctx, planQuery, memberID).
		Scan(&summary.DietTitle, &summary.RoutineTitle)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to load member plan")
	}

	checkinQuery := `
		SELECT COUNT(*), MAX(created_at)
		FROM checkins
		WHERE member_id = $1 AND created_at > NOW() - INTERVAL '30 days'`

	var lastCheckin sql.NullTime
	if err := r.db.QueryRowContext(ctx, checkinQuery, memberID).
		Scan(&summary.CheckinsLast30d, &lastCheckin); err != nil {
		return nil, errors.Wrap(err, "failed to load member checkins")
	}
	if lastCheckin.Valid {
		summary.LastCheckinAt = &lastCheckin.Time
	}

	return summary, nil
}

// LatestWeight returns the member's most recent recorded weight.
func (r *MemberRepository) LatestWeight(ctx context.Context, memberID string) (float64, error) {
	var weight float64

	q := `
		SELECT weight_kg
		FROM weight_logs
		WHERE member_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &weight, q, memberID)
	if err == sql.ErrNoRows {
		return 0, errors.Wrap(errors.ErrNotFound, "no weight recorded for member")
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load member weight")
	}

	return weight, nil
}

// ApplyPlan stores the computed macros as the member's current plan and
// assigns the matching diet and routine.
func (r *MemberRepository) ApplyPlan(ctx context.Context, memberID string, macros domain.MacroPlan) (*domain.MemberPlanResult, error) {
	if err := r.ensureMemberExists(ctx, memberID); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO member_plans (
			id, member_id, goal, weight_kg, calories, protein_g, fat_g, carbs_g,
			diet_title, routine_title, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now().UTC()
	dietTitle := "Dieta " + domain.GoalLabel(macros.Goal)
	routineTitle := "Rutina " + domain.GoalLabel(macros.Goal)

	_, err := r.db.ExecContext(ctx, q,
		uuid.New(), memberID, macros.Goal, macros.WeightKg,
		macros.Calories, macros.ProteinG, macros.FatG, macros.CarbsG,
		dietTitle, routineTitle, now,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store member plan")
	}

	return &domain.MemberPlanResult{
		MemberID:        memberID,
		Macros:          macros,
		DietAssigned:    true,
		RoutineAssigned: true,
	}, nil
}

// AssignTrainer links a member to a trainer.
func (r *MemberRepository) AssignTrainer(ctx context.Context, memberID, trainerID string) error {
	q := `UPDATE members SET trainer_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, q, memberID, trainerID)
	if err != nil {
		return errors.Wrap(err, "failed to assign trainer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to check assignment result")
	}
	if affected == 0 {
		return errors.Wrap(errors.ErrNotFound, "member not found")
	}

	return nil
}

func (r *MemberRepository) ensureMemberExists(ctx context.Context, memberID string) error {
	var exists bool

	q := `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, q, memberID); err != nil {
		return errors.Wrap(err, "failed to check member")
	}
	if !exists {
		return errors.Wrap(errors.ErrNotFound, "member not found")
	}

	return nil
}
