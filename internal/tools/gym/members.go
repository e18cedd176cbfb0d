package gym

import (
	"context"
	"fmt"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

func newFindMemberTool(members MemberRepository) tools.Tool {
	return tools.New(
		"find_member",
		"Buscar un socio/miembro por nombre o email. Usa esto cuando el admin mencione un nombre de socio.",
		tools.CapabilityReadOnly,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Nombre o email del socio a buscar",
				},
			},
			"required": []string{"search"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			search, err := stringArg(args, "search")
			if err != nil {
				return nil, err
			}

			found, err := members.Search(ctx, search)
			if err != nil {
				return nil, errors.Wrap(err, "member search failed")
			}

			message := "No encontré ningún socio con ese nombre"
			if len(found) > 0 {
				message = fmt.Sprintf("Encontré %s", countLabel(len(found), "socio", "socios"))
			}

			return map[string]interface{}{
				"members": found,
				"count":   len(found),
				"message": message,
			}, nil
		},
	)
}

func newMemberSummaryTool(members MemberRepository) tools.Tool {
	return tools.New(
		"get_member_summary",
		"Obtener resumen completo de un socio: su entrenador, dieta, rutina, peso, checkins, etc.",
		tools.CapabilityReadOnly,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"member_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del socio",
				},
			},
			"required": []string{"member_id"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			memberID, err := stringArg(args, "member_id")
			if err != nil {
				return nil, err
			}

			summary, err := members.Summary(ctx, memberID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load member summary")
			}

			return map[string]interface{}{"summary": summary}, nil
		},
	)
}

func newApplyMemberPlanTool(members MemberRepository) tools.Tool {
	return tools.New(
		"apply_full_member_plan",
		"Aplicar un plan completo a un socio: calcular macros según objetivo (pérdida de grasa, mantener, ganar músculo) y asignar dieta y rutina automáticamente.",
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
					"description": "Objetivo: fat_loss (pérdida de grasa), maintain (mantener), muscle_gain (ganar músculo)",
				},
				"weight_kg": map[string]interface{}{
					"type":        "number",
					"description": "Peso del socio en kg (opcional, se usa el último registrado si no se proporciona)",
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

			result, err := members.ApplyPlan(ctx, memberID, macros)
			if err != nil {
				return nil, errors.Wrap(err, "failed to apply member plan")
			}

			return map[string]interface{}{
				"result":  result,
				"message": fmt.Sprintf("Plan de %s aplicado", domain.GoalLabel(macros.Goal)),
			}, nil
		},
	)
}

func newAssignTrainerTool(members MemberRepository) tools.Tool {
	return tools.New(
		"assign_trainer_to_member",
		"Asignar un entrenador a un socio",
		tools.CapabilityMutating,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"member_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del socio",
				},
				"trainer_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del entrenador",
				},
			},
			"required": []string{"member_id", "trainer_id"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			memberID, err := stringArg(args, "member_id")
			if err != nil {
				return nil, err
			}
			trainerID, err := stringArg(args, "trainer_id")
			if err != nil {
				return nil, err
			}

			if err := members.AssignTrainer(ctx, memberID, trainerID); err != nil {
				return nil, errors.Wrap(err, "failed to assign trainer")
			}

			return map[string]interface{}{
				"member_id":  memberID,
				"trainer_id": trainerID,
				"message":    "Entrenador asignado",
			}, nil
		},
	)
}
