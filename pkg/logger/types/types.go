package types

import (
	"go.uber.org/zap"
)

// Logger is a named sugared zap logger
type Logger struct {
	*zap.SugaredLogger
	LogsPath string
	Name     string
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "nop"}
}
