// Package stock clasifica cantidades de inventario en nivel de stock y
// prioridad de reposición (servicio de dominio, funciones puras).
package stock

// Umbrales canónicos de nivel de stock. Única fuente de verdad: los consumen
// tanto el clasificador como la consulta de stock bajo del dashboard.
const (
	LevelLowMax    int64 = 5  // cantidad <= 5 -> LOW
	LevelMediumMax int64 = 20 // 5 < cantidad <= 20 -> MEDIUM; resto IDEAL
)

// Level nivel de stock para presentación.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelIdeal  Level = "IDEAL"
)

// Priority urgencia de reposición derivada solo de la cantidad.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL" // stock cero
	PriorityHigh     Priority = "HIGH"     // 1-4
	PriorityMedium   Priority = "MEDIUM"   // 5-9
	PriorityLow      Priority = "LOW"      // 10+
)

// LevelFor mapea una cantidad a su nivel de stock.
func LevelFor(quantity int64) Level {
	switch {
	case quantity <= LevelLowMax:
		return LevelLow
	case quantity <= LevelMediumMax:
		return LevelMedium
	default:
		return LevelIdeal
	}
}

// ColorFor color de presentación asociado a un nivel (función total).
func ColorFor(level Level) string {
	switch level {
	case LevelLow:
		return "red"
	case LevelMedium:
		return "yellow"
	default:
		return "green"
	}
}

// PriorityFor mapea una cantidad a su prioridad de reposición.
// Es determinista y total; ninguna estimación estadística la sobreescribe.
func PriorityFor(quantity int64) Priority {
	switch {
	case quantity == 0:
		return PriorityCritical
	case quantity <= 4:
		return PriorityHigh
	case quantity <= 9:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
