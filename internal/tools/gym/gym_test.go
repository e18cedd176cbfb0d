package gym

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

type fakeMembers struct {
	searchResult []domain.Member
	latestWeight float64
	weightErr    error
	appliedPlan  *domain.MacroPlan
	assignedTo   string
}

func (f *fakeMembers) Search(_ context.Context, query string) ([]domain.Member, error) {
	return f.searchResult, nil
}

func (f *fakeMembers) Summary(_ context.Context, memberID string) (*domain.MemberSummary, error) {
	return &domain.MemberSummary{Member: domain.Member{ID: memberID, Name: "Ana"}}, nil
}

func (f *fakeMembers) LatestWeight(_ context.Context, _ string) (float64, error) {
	if f.weightErr != nil {
		return 0, f.weightErr
	}
	return f.latestWeight, nil
}

func (f *fakeMembers) ApplyPlan(_ context.Context, memberID string, macros domain.MacroPlan) (*domain.MemberPlanResult, error) {
	f.appliedPlan = &macros
	return &domain.MemberPlanResult{MemberID: memberID, Macros: macros, DietAssigned: true, RoutineAssigned: true}, nil
}

func (f *fakeMembers) AssignTrainer(_ context.Context, memberID, trainerID string) error {
	f.assignedTo = trainerID
	return nil
}

type fakeDiets struct {
	saved *domain.DietPlan
}

func (f *fakeDiets) SavePlan(_ context.Context, plan domain.DietPlan) (*domain.DietPlan, error) {
	f.saved = &plan
	return &plan, nil
}

func TestFindMemberTool(t *testing.T) {
	ctx := context.Background()

	t.Run("reports matches in Spanish", func(t *testing.T) {
		members := &fakeMembers{searchResult: []domain.Member{{ID: "m1", Name: "Ana"}}}
		tool := newFindMemberTool(members)

		payload, err := tool.Execute(ctx, map[string]interface{}{"search": "ana"})
		require.NoError(t, err)

		result := payload.(map[string]interface{})
		assert.Equal(t, 1, result["count"])
		assert.Equal(t, "Encontré 1 socio", result["message"])
	})

	t.Run("no matches", func(t *testing.T) {
		tool := newFindMemberTool(&fakeMembers{})

		payload, err := tool.Execute(ctx, map[string]interface{}{"search": "nadie"})
		require.NoError(t, err)

		result := payload.(map[string]interface{})
		assert.Equal(t, 0, result["count"])
		assert.Equal(t, "No encontré ningún socio con ese nombre", result["message"])
	})

	t.Run("missing search argument", func(t *testing.T) {
		tool := newFindMemberTool(&fakeMembers{})

		_, err := tool.Execute(ctx, map[string]interface{}{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})
}

func TestApplyMemberPlanTool(t *testing.T) {
	ctx := context.Background()

	t.Run("uses provided weight", func(t *testing.T) {
		members := &fakeMembers{}
		tool := newApplyMemberPlanTool(members)

		_, err := tool.Execute(ctx, map[string]interface{}{
			"member_id": "m1",
			"goal":      "fat_loss",
			"weight_kg": float64(80),
		})
		require.NoError(t, err)

		require.NotNil(t, members.appliedPlan)
		assert.Equal(t, domain.GoalFatLoss, members.appliedPlan.Goal)
		assert.Equal(t, 1920, members.appliedPlan.Calories)
	})

	t.Run("falls back to last recorded weight", func(t *testing.T) {
		members := &fakeMembers{latestWeight: 90}
		tool := newApplyMemberPlanTool(members)

		_, err := tool.Execute(ctx, map[string]interface{}{
			"member_id": "m1",
			"goal":      "maintain",
		})
		require.NoError(t, err)

		require.NotNil(t, members.appliedPlan)
		assert.Equal(t, float64(90), members.appliedPlan.WeightKg)
	})

	t.Run("no weight available", func(t *testing.T) {
		members := &fakeMembers{weightErr: errors.Wrap(errors.ErrNotFound, "no weight")}
		tool := newApplyMemberPlanTool(members)

		_, err := tool.Execute(ctx, map[string]interface{}{
			"member_id": "m1",
			"goal":      "maintain",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("unknown goal", func(t *testing.T) {
		tool := newApplyMemberPlanTool(&fakeMembers{latestWeight: 80})

		_, err := tool.Execute(ctx, map[string]interface{}{
			"member_id": "m1",
			"goal":      "shredded",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	})
}

func TestGenerateDietPlanTool(t *testing.T) {
	ctx := context.Background()

	members := &fakeMembers{latestWeight: 75}
	diets := &fakeDiets{}
	tool := newGenerateDietPlanTool(members, diets)

	payload, err := tool.Execute(ctx, map[string]interface{}{
		"member_id": "m1",
		"goal":      "muscle_gain",
	})
	require.NoError(t, err)

	require.NotNil(t, diets.saved)
	assert.Equal(t, "m1", diets.saved.MemberID)
	assert.Equal(t, domain.GoalMuscleGain, diets.saved.Macros.Goal)
	assert.Contains(t, diets.saved.Content, "PROGRAMA NUTRICIONAL")

	result := payload.(map[string]interface{})
	assert.Contains(t, result["message"], "ganar músculo")
}

func TestRegisterAll(t *testing.T) {
	registry := tools.NewRegistry()
	require.NoError(t, RegisterAll(registry, Deps{
		Members: &fakeMembers{},
		Diets:   &fakeDiets{},
	}))

	assert.Equal(t, 11, registry.Len())

	readOnly := []string{"find_member", "get_member_summary", "get_gym_dashboard", "list_trainers", "list_recent_posts"}
	for _, name := range readOnly {
		capability, err := registry.Classify(name)
		require.NoError(t, err, name)
		assert.Equal(t, tools.CapabilityReadOnly, capability, name)
	}

	mutating := []string{"apply_full_member_plan", "assign_trainer_to_member", "create_invitation_code", "create_notice", "hide_post", "generate_diet_plan"}
	for _, name := range mutating {
		capability, err := registry.Classify(name)
		require.NoError(t, err, name)
		assert.Equal(t, tools.CapabilityMutating, capability, name)
	}
}

func TestArgHelpers(t *testing.T) {
	t.Run("numberArg accepts strings", func(t *testing.T) {
		value, ok := numberArg(map[string]interface{}{"weight_kg": "82.5"}, "weight_kg")
		require.True(t, ok)
		assert.Equal(t, 82.5, value)
	})

	t.Run("intArgOrDefault", func(t *testing.T) {
		assert.Equal(t, 5, intArgOrDefault(map[string]interface{}{"limit": float64(5)}, "limit", 10))
		assert.Equal(t, 10, intArgOrDefault(map[string]interface{}{}, "limit", 10))
	})
}
