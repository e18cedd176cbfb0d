package assistant

import (
	"fmt"

	"github.com/goorum04/Nlvip-sub000/internal/domain"
)

// PlanEntry is one human-readable line of an execution plan.
type PlanEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Arguments   ArgumentPayload `json:"args"`
}

const (
	defaultPlanUses       = 10
	defaultPlanExpireDays = 30
)

// BuildPlan renders the pending mutating calls into the execution plan
// shown to the admin before confirmation. Unparseable arguments still
// produce an entry; the admin sees the call and the failure surfaces on
// execution.
func BuildPlan(calls []ToolCall) []PlanEntry {
	plan := make([]PlanEntry, 0, len(calls))

	for _, call := range calls {
		args, err := call.Arguments.Map()
		if err != nil {
			args = map[string]interface{}{}
		}

		icon, description := describeCall(call.Name, args)

		plan = append(plan, PlanEntry{
			ID:          call.ID,
			Name:        call.Name,
			Icon:        icon,
			Description: description,
			Arguments:   call.Arguments,
		})
	}

	return plan
}

func describeCall(name string, args map[string]interface{}) (icon, description string) {
	str := func(key string) string {
		if v, ok := args[key].(string); ok {
			return v
		}
		return ""
	}
	num := func(key string, fallback int) int {
		if v, ok := args[key].(float64); ok {
			return int(v)
		}
		return fallback
	}

	switch name {
	case "find_member":
		return "🔍", fmt.Sprintf("Buscar socio: %q", str("search"))
	case "get_member_summary":
		return "📋", "Ver resumen del socio"
	case "apply_full_member_plan":
		return "🎯", fmt.Sprintf("Aplicar plan de %s al socio", domain.GoalLabel(domain.Goal(str("goal"))))
	case "assign_trainer_to_member":
		return "👥", "Asignar entrenador al socio"
	case "create_invitation_code":
		return "🎟️", fmt.Sprintf("Crear código de invitación (%d usos, %d días)",
			num("max_uses", defaultPlanUses), num("expire_days", defaultPlanExpireDays))
	case "create_notice":
		audience := " (para todos)"
		if str("member_id") != "" {
			audience = " (para un socio)"
		}
		return "📢", fmt.Sprintf("Crear aviso: %q%s", str("title"), audience)
	case "hide_post":
		return "🚫", "Ocultar post del feed"
	case "get_gym_dashboard":
		return "📊", "Ver resumen del gimnasio"
	case "list_trainers":
		return "👨‍🏫", "Listar entrenadores"
	case "list_recent_posts":
		return "📝", "Ver posts recientes"
	case "generate_diet_plan":
		return "🥗", fmt.Sprintf("Generar dieta de %s para el socio", domain.GoalLabel(domain.Goal(str("goal"))))
	default:
		return "🔧", name
	}
}
