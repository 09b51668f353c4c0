package app

import (
	"fmt"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
)

// Describe renders a failed operation as the message shown to users,
// e.g. "Decryption failed: message authentication failed".
func Describe(op workbench.Operation, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s failed: %s", op, err.Error())
}
