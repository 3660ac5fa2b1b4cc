package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// isUUID expects an id already passed through normalizeID.
func isUUID(s string) bool {
	return validate.Var(s, "required,uuid") == nil
}

// normalizeID maps an id to the canonical lowercase form Postgres returns.
func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
