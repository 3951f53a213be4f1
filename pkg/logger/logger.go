package logger

import (
	"log"
	"os"
)

var std = log.New(os.Stdout, "", log.LstdFlags)

// Init initializes the plain logger (used before config is loaded)
func Init() {
	std.SetOutput(os.Stdout)
}

// Info logs an informational message (printf style)
func Info(format string, args ...interface{}) {
	std.Printf("[INFO] "+format, args...)
}

// Error logs an error message (printf style)
func Error(format string, args ...interface{}) {
	std.Printf("[ERROR] "+format, args...)
}
