package domain

import (
	"math"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// Goal is a member's training objective.
type Goal string

const (
	GoalFatLoss    Goal = "fat_loss"
	GoalMaintain   Goal = "maintain"
	GoalMuscleGain Goal = "muscle_gain"
)

// GoalLabel maps a goal to its Spanish display name.
func GoalLabel(goal Goal) string {
	switch goal {
	case GoalFatLoss:
		return "pérdida de grasa"
	case GoalMaintain:
		return "mantenimiento"
	case GoalMuscleGain:
		return "ganar músculo"
	default:
		return string(goal)
	}
}

// MacroPlan holds the daily macronutrient targets for a member.
type MacroPlan struct {
	Goal     Goal    `json:"goal"`
	WeightKg float64 `json:"weight_kg"`
	Calories int     `json:"calories"`
	ProteinG int     `json:"protein_g"`
	FatG     int     `json:"fat_g"`
	CarbsG   int     `json:"carbs_g"`
}

// Daily energy per kg of body weight by goal. Maintenance sits at 28
// kcal/kg with a 15% cut or surplus on either side.
var caloriesPerKg = map[Goal]float64{
	GoalFatLoss:    24,
	GoalMaintain:   28,
	GoalMuscleGain: 31,
}

const (
	proteinGramsPerKg = 2.0
	fatGramsPerKg     = 0.9
)

// ComputeMacros calculates daily macros for a goal and body weight.
// Protein is fixed at 2 g/kg and fat at 0.9 g/kg; remaining calories go
// to carbohydrates.
func ComputeMacros(goal Goal, weightKg float64) (MacroPlan, error) {
	perKg, ok := caloriesPerKg[goal]
	if !ok {
		return MacroPlan{}, errors.Wrapf(errors.ErrInvalidInput, "unknown goal %q", goal)
	}
	if weightKg <= 0 {
		return MacroPlan{}, errors.Wrap(errors.ErrInvalidInput, "weight must be positive")
	}

	calories := perKg * weightKg
	protein := proteinGramsPerKg * weightKg
	fat := fatGramsPerKg * weightKg

	carbs := (calories - protein*4 - fat*9) / 4
	if carbs < 0 {
		carbs = 0
	}

	return MacroPlan{
		Goal:     goal,
		WeightKg: weightKg,
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(protein)),
		FatG:     int(math.Round(fat)),
		CarbsG:   int(math.Round(carbs)),
	}, nil
}
