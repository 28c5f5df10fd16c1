package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a logger for an engine component.
// If the provided handler is nil, it creates a default text handler grouped
// under componentName and warns that defaults are in use.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - componentName: The name of the engine or subsystem (e.g., "native", "quadrature")
//   - groupName: Optional additional group name within the component
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, componentName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stderr, nil)
		handler = defaultHandler.WithGroup(componentName)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
