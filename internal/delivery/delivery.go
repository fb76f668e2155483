// Package delivery defines the contract every transport entrypoint
// satisfies so the application can serve them uniformly.
package delivery

import "context"

// Delivery is a long-running transport entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
