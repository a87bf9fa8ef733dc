package services

import "log/slog"

// ServiceOption is a functional option for configuring the shared parts of a service
type ServiceOption func(*BaseService)

// WithServiceLogger sets the logger used when the context carries none
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *BaseService) {
		s.Logger = logger
	}
}

func applyOptions(base *BaseService, options []ServiceOption) {
	for _, option := range options {
		option(base)
	}
}
