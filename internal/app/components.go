package app

import "go.trai.ch/jitsnap/internal/core/ports"

// Components holds the wired application and the collaborators main needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(a *App, log ports.Logger) *Components {
	return &Components{
		App:    a,
		Logger: log,
	}
}
