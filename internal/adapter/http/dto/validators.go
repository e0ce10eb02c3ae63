package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"asset-signature-service/internal/core/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sig_purpose", validatePurpose)
	}
}

// validatePurpose accepts only the known signature purposes.
func validatePurpose(fl validator.FieldLevel) bool {
	switch domain.SignaturePurpose(fl.Field().String()) {
	case domain.PurposeAcknowledgment, domain.PurposeApproval, domain.PurposeTransfer, domain.PurposeReturn:
		return true
	}
	return false
}
