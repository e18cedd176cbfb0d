package domain

import (
	"fmt"
	"strings"
)

// House rules attached to every generated nutrition program.
const (
	dietTitle = "PROGRAMA NUTRICIONAL"

	dietGeneralRules = `## REGLAS GENERALES PARA TODAS LAS COMIDAS

• **Verdura o Ensalada:** Se puede utilizar al gusto, pero con moderación.

• **Aliño:**
  - AOVE (Aceite de Oliva Virgen Extra) solo si se especifica en la comida.
  - Si no se especifica AOVE, se puede utilizar: limón, lima, especias, sal, vinagre.

• **Arroces y Pastas:** Se puede utilizar tomate tamizado o rallado, pero no frito.

• **Post-Entrenamiento:** 40gr de proteína inmediatamente al terminar.`

	dietSupplementation = `## SUPLEMENTACIÓN

• **Omega 3:** 1 en el desayuno
• **Multivitamínico + Mineral:** 1 en el desayuno, 1 en la cena
• **Pre-entreno:** 1 dosis, 15 minutos antes de entrenar
• **Creatina:** 1gr por cada 10kg de peso corporal (todos los días)
• **Post-entrenamiento:** 40gr de proteína

### Suplementos Opcionales:
• **Carbobloker:** Solo cuando te saltes la dieta (2 cápsulas media hora antes)
• **DAA:** 1 en el desayuno, 1 en la cena
• **MACA:** 1 en el desayuno, 1 en la cena
• **MAP + AMILOPEPTINA:** 15gr MAP + 60gr AMILOPEPTINA (intra o post-entreno)`

	dietObservations = `## OBSERVACIONES GENERALES

• **Sal:** OBLIGATORIO el uso en todas las comidas para dar sabor.
• **Especias:** Para dar sabor a los platos.
• **Salsas y Condimentos:** Permitidos, pero libres de azúcares y grasas, y con moderación.

• **Bebidas:**
  - Edulcoradas y carbonatadas: máximo 1-2 al día (Coca-Cola Zero, Aquarius, etc.)
  - Infusiones y cafés: máximo 2 al día, sin leche, se puede añadir edulcorante.

• **Edulcorantes:** Evitar el azúcar. Preferir Stevia o Sacarina.

• **Comida Libre:** UNA comida libre a la semana (sustituye la comida que toque).`

	dietFluids = `## FLUIDOS

• **Agua:** Consumir 4 a 6 litros a lo largo del día.

• **IMPORTANTE:** Evitar líquidos DURANTE la comida.
  - Consumir líquidos 30 minutos antes o después.
  - Razón: Los fluidos diluyen los ácidos del estómago y ralentizan la absorción.`

	dietDisclaimer = `---
⚠️ DESCARGO DE RESPONSABILIDAD:
"Estos programas son proporcionados con fines informativos y educativos únicamente basados en experiencia como atleta, y no deben considerarse como asesoramiento médico. El usuario asume la responsabilidad total de seguir este programa, comprendiendo que los resultados pueden variar según factores individuales."`
)

// RenderDietPlan builds the full nutrition program text for a macro plan.
func RenderDietPlan(macros MacroPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", dietTitle)
	b.WriteString("## TUS MACROS DIARIOS\n\n")
	fmt.Fprintf(&b, "🔥 **Calorías:** %d kcal\n", macros.Calories)
	fmt.Fprintf(&b, "🥩 **Proteína:** %dg\n", macros.ProteinG)
	fmt.Fprintf(&b, "🍚 **Carbohidratos:** %dg\n", macros.CarbsG)
	fmt.Fprintf(&b, "🥑 **Grasas:** %dg\n\n", macros.FatG)

	b.WriteString(dietGeneralRules)
	b.WriteString("\n\n")
	b.WriteString(dietSupplementation)
	b.WriteString("\n\n")
	b.WriteString(dietObservations)
	b.WriteString("\n\n")
	b.WriteString(dietFluids)
	b.WriteString("\n\n")
	b.WriteString(dietDisclaimer)

	return b.String()
}
