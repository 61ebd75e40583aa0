package constants

// Demand urgency and priority labels match the values the support team
// already uses, so they are stored verbatim rather than translated.
const (
	DemandUrgencyLow      = "Baixa"
	DemandUrgencyMedium   = "Media"
	DemandUrgencyHigh     = "Alta"
	DemandUrgencyCritical = "Critica"

	DemandPriorityLow    = "Baixa"
	DemandPriorityNormal = "Normal"
	DemandPriorityHigh   = "Alta"
	DemandPriorityUrgent = "Urgente"

	DemandStatusBacklog    = "backlog"
	DemandStatusAnalysis   = "em-analise"
	DemandStatusInProgress = "em-desenvolvimento"
	DemandStatusTesting    = "em-teste"
	DemandStatusBlocked    = "bloqueado"
	DemandStatusDone       = "concluido"
)
