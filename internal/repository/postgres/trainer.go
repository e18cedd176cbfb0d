package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

var _ gym.TrainerRepository = (*TrainerRepository)(nil)

// TrainerRepository implements gym.TrainerRepository using sqlx
type TrainerRepository struct {
	db DBTX
}

// NewTrainerRepository creates a new trainer repository
func NewTrainerRepository(db DBTX) *TrainerRepository {
	return &TrainerRepository{db: db}
}

// List returns all trainers with their assigned member counts.
func (r *TrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	var trainers []domain.Trainer

	q := `
		SELECT t.id, t.name, t.email, COUNT(m.id) AS member_count
		FROM trainers t
		LEFT JOIN members m ON m.trainer_id = t.id
		GROUP BY t.id, t.name, t.email
		ORDER BY t.name`

	if err := r.db.SelectContext(ctx, &trainers, q); err != nil {
		return nil, errors.Wrap(err, "failed to list trainers")
	}

	return trainers, nil
}

// CreateInvitation issues a registration code bound to a trainer.
func (r *TrainerRepository) CreateInvitation(ctx context.Context, trainerID string, maxUses, expireDays int) (*domain.InvitationCode, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`, trainerID); err != nil {
		return nil, errors.Wrap(err, "failed to check trainer")
	}
	if !exists {
		return nil, errors.Wrap(errors.ErrNotFound, "trainer not found")
	}

	now := time.Now().UTC()
	invitation := domain.InvitationCode{
		ID:        uuid.New().String(),
		Code:      newInvitationCode(),
		TrainerID: trainerID,
		MaxUses:   maxUses,
		ExpiresAt: now.AddDate(0, 0, expireDays),
		CreatedAt: now,
	}

	q := `
		INSERT INTO invitation_codes (id, code, trainer_id, max_uses, uses, expires_at, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6)`

	_, err := r.db.ExecContext(ctx, q,
		invitation.ID, invitation.Code, invitation.TrainerID,
		invitation.MaxUses, invitation.ExpiresAt, invitation.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store invitation code")
	}

	return &invitation, nil
}

// Codes are short and human-typeable, so the first UUID block is enough.
func newInvitationCode() string {
	return "NLVIP-" + strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
}
