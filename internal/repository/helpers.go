package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// isUUID reports whether id can be compared against a uuid column without
// postgres rejecting the literal.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isNotFound returns true when err indicates no rows were found.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
