package gorm

import "strings"

// isDuplicateKey reports whether err is a Postgres unique violation.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
