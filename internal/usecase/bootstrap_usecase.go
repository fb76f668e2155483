package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// BootstrapUsecase drives startup state resolution: it restores the
// persisted session, location and first-launch flag, and reduces them to
// the surface the UI shell should present.
type BootstrapUsecase interface {
	// Run restores all persisted state and returns the resolved target.
	// Restores run concurrently; Run returns once all of them settled.
	Run(ctx context.Context) (entity.BootTarget, error)

	// Target re-evaluates the resolution against the current state.
	Target() entity.BootTarget

	// Snapshot returns the current resolution inputs.
	Snapshot() entity.BootSnapshot

	// CompleteOnboarding marks the first launch as consumed. The in-memory
	// flag flips immediately; the persisted flag is written behind it.
	CompleteOnboarding(ctx context.Context) error
}

// ResolveTarget reduces a boot snapshot to a presentation target. The
// order of the checks is the priority order of the surfaces: a pending
// restore blanks everything, onboarding precedes auth, auth precedes
// location setup.
func ResolveTarget(s entity.BootSnapshot) entity.BootTarget {
	if s.SessionLoading || !s.FirstLaunchResolved {
		return entity.BootTargetSplash
	}
	if s.FirstLaunch {
		return entity.BootTargetOnboarding
	}
	if !s.LoggedIn && !s.Guest {
		return entity.BootTargetAuth
	}
	if !s.HasLocation {
		return entity.BootTargetLocationSetup
	}

	return entity.BootTargetMain
}
