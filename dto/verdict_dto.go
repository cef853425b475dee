package dto

import (
	"github.com/lgu-seal/sglgb-backend/models"
)

type ComplianceVerdictDto struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

func AdaptComplianceVerdictDto(verdict models.ComplianceVerdict) ComplianceVerdictDto {
	return ComplianceVerdictDto{
		Status: verdict.Status.String(),
		Remark: verdict.Remark,
	}
}

// EvaluationResultDto also exposes the variable bag handed to the external
// remark-templating service.
type EvaluationResultDto struct {
	Verdict   ComplianceVerdictDto `json:"verdict"`
	Variables map[string]string    `json:"variables"`
}

func AdaptEvaluationResultDto(verdict models.ComplianceVerdict, variables map[string]string) EvaluationResultDto {
	return EvaluationResultDto{
		Verdict:   AdaptComplianceVerdictDto(verdict),
		Variables: variables,
	}
}
