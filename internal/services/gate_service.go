package services

import (
	"Shelved/internal/config"
)

// GateService is the shared-password gate in front of the application.
// A single static secret, compared exactly; no hashing, no rate limiting.
type GateService interface {
	Authenticate(candidate string) bool
}

type gateServiceImpl struct {
	secret     string
	logService LogService
}

func NewGateService(configuration *config.Configuration, logService LogService) GateService {
	return &gateServiceImpl{
		secret:     configuration.Gate.Secret,
		logService: logService,
	}
}

func (s *gateServiceImpl) Authenticate(candidate string) bool {
	if s.secret == "" {
		s.logService.Log.Warn("gate secret is not configured, rejecting all logins")
		return false
	}
	if candidate != s.secret {
		s.logService.Log.Warn("rejected login attempt")
		return false
	}
	return true
}
