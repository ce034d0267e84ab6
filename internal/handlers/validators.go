package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mpalomar/budgeteer/internal/core/domain"
)

// RegisterValidators installs custom binding validators on gin's validator
// engine. Must be called once before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entrykind", validEntryKind)
	}
}

// validEntryKind accepts only the INCOME and EXPENSE entry kinds.
func validEntryKind(fl validator.FieldLevel) bool {
	switch domain.EntryKind(fl.Field().String()) {
	case domain.Income, domain.Expense:
		return true
	}
	return false
}
