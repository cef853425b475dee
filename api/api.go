package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/usecases"
)

// Routes wires every endpoint onto the router. Grouping follows the
// resources: checklist authoring, the indicator catalog, and assessment
// calculation.
func Routes(r gin.IRoutes, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	r.POST("/checklists/validate", handleValidateChecklistConfig(uc))
	r.POST("/checklists", handleCreateChecklist(uc))
	r.GET("/checklists/:checklist_id", handleGetChecklist(uc))
	r.PATCH("/checklists/:checklist_id", handleUpdateChecklist(uc))
	r.POST("/checklists/:checklist_id/publish", handlePublishChecklist(uc))

	r.GET("/governance-areas", handleListGovernanceAreas(uc))
	r.GET("/governance-areas/:governance_area_id/indicators", handleListIndicators(uc))
	r.GET("/indicators/:indicator_id", handleGetIndicator(uc))
	r.GET("/indicators/:indicator_id/checklists", handleListChecklistsForIndicator(uc))

	r.POST("/assessments/:assessment_id/indicators/:indicator_id/evaluate", handleEvaluateIndicator(uc))
	r.POST("/assessments/:assessment_id/calculate", handleCalculateAssessment(uc))
	r.GET("/assessments/:assessment_id/bbi-results", handleListBbiResults(uc))
}
