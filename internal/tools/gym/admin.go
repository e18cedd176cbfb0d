package gym

import (
	"context"
	"fmt"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

const (
	defaultInvitationUses       = 10
	defaultInvitationExpireDays = 30
)

func newCreateInvitationTool(trainers TrainerRepository) tools.Tool {
	return tools.New(
		"create_invitation_code",
		"Crear un código de invitación para que nuevos socios se registren con un entrenador específico",
		tools.CapabilityMutating,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"trainer_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del entrenador al que se asignarán los nuevos socios",
				},
				"max_uses": map[string]interface{}{
					"type":        "integer",
					"description": "Número máximo de usos del código (por defecto 10)",
				},
				"expire_days": map[string]interface{}{
					"type":        "integer",
					"description": "Días hasta que expire el código (por defecto 30)",
				},
			},
			"required": []string{"trainer_id"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			trainerID, err := stringArg(args, "trainer_id")
			if err != nil {
				return nil, err
			}

			maxUses := intArgOrDefault(args, "max_uses", defaultInvitationUses)
			expireDays := intArgOrDefault(args, "expire_days", defaultInvitationExpireDays)

			code, err := trainers.CreateInvitation(ctx, trainerID, maxUses, expireDays)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create invitation code")
			}

			return map[string]interface{}{
				"result":  code,
				"message": fmt.Sprintf("Código %s creado (%d usos, %d días)", code.Code, code.MaxUses, expireDays),
			}, nil
		},
	)
}

func newCreateNoticeTool(notices NoticeRepository) tools.Tool {
	return tools.New(
		"create_notice",
		"Crear y enviar un aviso/notificación. Puede ser para todos los socios o para uno específico.",
		tools.CapabilityMutating,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Título del aviso",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Contenido del mensaje",
				},
				"priority": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"low", "normal", "high"},
					"description": "Prioridad del aviso",
				},
				"member_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del socio específico (si es null, va para todos)",
				},
			},
			"required": []string{"title", "message"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			title, err := stringArg(args, "title")
			if err != nil {
				return nil, err
			}
			message, err := stringArg(args, "message")
			if err != nil {
				return nil, err
			}

			priority := optionalStringArg(args, "priority")
			if priority == "" {
				priority = "normal"
			}

			notice := domain.Notice{
				Title:    title,
				Message:  message,
				Priority: priority,
			}
			if memberID := optionalStringArg(args, "member_id"); memberID != "" {
				notice.MemberID = &memberID
			}

			created, err := notices.Create(ctx, notice)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create notice")
			}

			return map[string]interface{}{
				"result":  created,
				"message": "Aviso creado",
			}, nil
		},
	)
}

func newDashboardTool(dashboard DashboardRepository) tools.Tool {
	return tools.New(
		"get_gym_dashboard",
		"Obtener resumen general del gimnasio: total socios, entrenadores, altas del mes, checkins, etc.",
		tools.CapabilityReadOnly,
		map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
			stats, err := dashboard.Stats(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load gym dashboard")
			}

			return map[string]interface{}{"dashboard": stats}, nil
		},
	)
}

func newListTrainersTool(trainers TrainerRepository) tools.Tool {
	return tools.New(
		"list_trainers",
		"Listar todos los entrenadores disponibles con su número de socios asignados",
		tools.CapabilityReadOnly,
		map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
			list, err := trainers.List(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to list trainers")
			}

			return map[string]interface{}{"trainers": list}, nil
		},
	)
}
