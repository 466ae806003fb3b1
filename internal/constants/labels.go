package constants

// UI labels, kept in the language of the stored day names.
const (
	LabelAllPriorities = "Todas"
	LabelNoPriority    = "Prioridad"
	LabelPlaceholder   = "Tarea..."
	LabelDone          = "Hecho"
	LabelProgress      = "Progreso semanal"
	LabelExport        = "Exportar semana"
	LabelReset         = "Reiniciar semana"
)
