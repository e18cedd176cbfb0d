package gym

import (
	"context"
	"fmt"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

func newGenerateDietPlanTool(members MemberRepository, diets DietRepository) tools.Tool {
	return tools.New(
		"generate_diet_plan",
		"Generar un plan de dieta personalizado para un socio basado en su objetivo y peso. Incluye macros calculados y las reglas del gimnasio NL VIP.",
		tools.CapabilityMutating,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"member_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del socio",
				},
				"goal": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"fat_loss", "maintain", "muscle_gain"},
					"description": "Objetivo: fat_loss, maintain, muscle_gain",
				},
				"weight_kg": map[string]interface{}{
					"type":        "number",
					"description": "Peso del socio en kg",
				},
			},
			"required": []string{"member_id", "goal"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			memberID, err := stringArg(args, "member_id")
			if err != nil {
				return nil, err
			}
			goal, err := stringArg(args, "goal")
			if err != nil {
				return nil, err
			}

			weight, ok := numberArg(args, "weight_kg")
			if !ok {
				weight, err = members.LatestWeight(ctx, memberID)
				if err != nil {
					return nil, errors.Wrap(err, "member has no recorded weight")
				}
			}

			macros, err := domain.ComputeMacros(domain.Goal(goal), weight)
			if err != nil {
				return nil, err
			}

			plan := domain.DietPlan{
				MemberID: memberID,
				Macros:   macros,
				Content:  domain.RenderDietPlan(macros),
			}

			saved, err := diets.SavePlan(ctx, plan)
			if err != nil {
				return nil, errors.Wrap(err, "failed to save diet plan")
			}

			return map[string]interface{}{
				"plan":    saved,
				"message": fmt.Sprintf("Dieta de %s generada (%d kcal)", domain.GoalLabel(macros.Goal), macros.Calories),
			}, nil
		},
	)
}
