// Package gym registers the admin assistant's tool catalog: member
// lookups, plan assignment, invitations, notices and feed moderation.
package gym

import (
	"context"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// MemberRepository provides member lookups and plan mutations.
type MemberRepository interface {
	Search(ctx context.Context, query string) ([]domain.Member, error)
	Summary(ctx context.Context, memberID string) (*domain.MemberSummary, error)
	LatestWeight(ctx context.Context, memberID string) (float64, error)
	ApplyPlan(ctx context.Context, memberID string, macros domain.MacroPlan) (*domain.MemberPlanResult, error)
	AssignTrainer(ctx context.Context, memberID, trainerID string) error
}

// TrainerRepository lists trainers and creates invitation codes.
type TrainerRepository interface {
	List(ctx context.Context) ([]domain.Trainer, error)
	CreateInvitation(ctx context.Context, trainerID string, maxUses, expireDays int) (*domain.InvitationCode, error)
}

// FeedRepository reads and moderates the social feed.
type FeedRepository interface {
	RecentPosts(ctx context.Context, limit int) ([]domain.Post, error)
	HidePost(ctx context.Context, postID string) error
}

// NoticeRepository creates announcements.
type NoticeRepository interface {
	Create(ctx context.Context, notice domain.Notice) (*domain.Notice, error)
}

// DashboardRepository aggregates gym-wide stats.
type DashboardRepository interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// DietRepository stores generated nutrition programs.
type DietRepository interface {
	SavePlan(ctx context.Context, plan domain.DietPlan) (*domain.DietPlan, error)
}

// Deps bundles the repositories the tool handlers need.
type Deps struct {
	Members   MemberRepository
	Trainers  TrainerRepository
	Feed      FeedRepository
	Notices   NoticeRepository
	Dashboard DashboardRepository
	Diets     DietRepository
}

// RegisterAll registers every gym tool on the registry.
func RegisterAll(registry *tools.Registry, deps Deps) error {
	all := []tools.Tool{
		newFindMemberTool(deps.Members),
		newMemberSummaryTool(deps.Members),
		newApplyMemberPlanTool(deps.Members),
		newAssignTrainerTool(deps.Members),
		newCreateInvitationTool(deps.Trainers),
		newCreateNoticeTool(deps.Notices),
		newHidePostTool(deps.Feed),
		newDashboardTool(deps.Dashboard),
		newListTrainersTool(deps.Trainers),
		newRecentPostsTool(deps.Feed),
		newGenerateDietPlanTool(deps.Members, deps.Diets),
	}

	for _, tool := range all {
		if err := registry.Register(tool); err != nil {
			return errors.Wrapf(err, "failed to register tool %s", tool.Name())
		}
	}

	return nil
}
