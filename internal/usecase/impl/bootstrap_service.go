package impl

import (
	"context"
	"log/slog"
	"sync"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"
)

type bootstrapService struct {
	store    repository.KVStore
	session  usecase.SessionUsecase
	location usecase.LocationUsecase
	logger   *slog.Logger

	mu    sync.RWMutex
	state entity.BootSnapshot
}

// NewBootstrapService creates a new bootstrap service instance
func NewBootstrapService(
	store repository.KVStore,
	session usecase.SessionUsecase,
	location usecase.LocationUsecase,
	logger *slog.Logger,
) usecase.BootstrapUsecase {
	return &bootstrapService{
		store:    store,
		session:  session,
		location: location,
		logger:   logger,
	}
}

// Run restores the session, the location and the first-launch flag
// concurrently, then resolves the boot target. Restore failures are
// logged and treated as their empty states; boot always lands somewhere.
func (b *bootstrapService) Run(ctx context.Context) (entity.BootTarget, error) {
	b.mu.Lock()
	b.state = entity.BootSnapshot{SessionLoading: true}
	b.mu.Unlock()

	var (
		wg          sync.WaitGroup
		session     entity.Session
		location    *entity.Location
		firstLaunch bool
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		restored, err := b.session.Restore(ctx)
		if err != nil {
			b.logger.Error("Session restore failed, booting logged out", slog.Any("error", err))

			return
		}
		session = restored
	}()

	go func() {
		defer wg.Done()

		restored, err := b.location.Restore(ctx)
		if err != nil {
			b.logger.Error("Location restore failed, booting without location", slog.Any("error", err))

			return
		}
		location = restored
	}()

	go func() {
		defer wg.Done()

		firstLaunch = b.readFirstLaunch(ctx)
	}()

	wg.Wait()

	b.mu.Lock()
	b.state = entity.BootSnapshot{
		SessionLoading:      false,
		FirstLaunchResolved: true,
		FirstLaunch:         firstLaunch,
		LoggedIn:            session.IsLoggedIn,
		Guest:               session.IsGuest,
		HasLocation:         location != nil,
	}
	target := usecase.ResolveTarget(b.state)
	b.mu.Unlock()

	b.logger.Info("Bootstrap resolved", slog.String("target", string(target)))

	return target, nil
}

// Target re-evaluates the resolution against the live session and
// location state, so it stays correct after logins and logouts that
// happened since Run.
func (b *bootstrapService) Target() entity.BootTarget {
	return usecase.ResolveTarget(b.Snapshot())
}

func (b *bootstrapService) Snapshot() entity.BootSnapshot {
	b.mu.RLock()
	state := b.state
	b.mu.RUnlock()

	session := b.session.Current()
	state.LoggedIn = session.IsLoggedIn
	state.Guest = session.IsGuest
	state.HasLocation = b.location.Current() != nil

	return state
}

// CompleteOnboarding flips the in-memory flag first so navigation moves
// on immediately; the persisted flag is written behind it and a failure
// only costs a repeated onboarding on some later launch.
func (b *bootstrapService) CompleteOnboarding(ctx context.Context) error {
	b.mu.Lock()
	b.state.FirstLaunch = false
	b.state.FirstLaunchResolved = true
	b.mu.Unlock()

	if err := b.store.Set(ctx, repository.KeyAlreadyLaunched, "true"); err != nil {
		b.logger.Warn("Failed to persist onboarding completion", slog.Any("error", err))
	}

	return nil
}

// readFirstLaunch reports whether this is the installation's first
// launch. Only the literal "true" counts as already launched; a read
// failure defaults to not-first so onboarding cannot reappear for
// established installations.
func (b *bootstrapService) readFirstLaunch(ctx context.Context) bool {
	value, err := b.store.Get(ctx, repository.KeyAlreadyLaunched)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return true
		}
		b.logger.Warn("Failed to read first-launch flag", slog.Any("error", err))

		return false
	}

	return value != "true"
}
