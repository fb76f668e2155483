package entity

// BootTarget is the top-level surface the UI shell should present after
// bootstrap resolution.
type BootTarget string

const (
	// BootTargetSplash is non-terminal: session restore or the first-launch
	// flag has not resolved yet. Re-evaluated on every state change.
	BootTargetSplash BootTarget = "splash"

	// BootTargetOnboarding is presented on the very first launch.
	BootTargetOnboarding BootTarget = "onboarding"

	// BootTargetAuth is presented when neither logged in nor guest.
	BootTargetAuth BootTarget = "auth"

	// BootTargetLocationSetup is presented when no location is resolved.
	BootTargetLocationSetup BootTarget = "location_setup"

	// BootTargetMain is the main application shell.
	BootTargetMain BootTarget = "main"
)

// BootSnapshot is the input state of the bootstrap decision function.
type BootSnapshot struct {
	SessionLoading      bool // Session restore still pending.
	FirstLaunchResolved bool // First-launch flag has been read from the store.
	FirstLaunch         bool // This is the first launch of the installation.
	LoggedIn            bool
	Guest               bool
	HasLocation         bool
}
