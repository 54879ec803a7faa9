// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// CollectionService is the storage gateway for the collection source list.
// It owns the JSON codec (EncodeSources, DecodeSources) and the
// LockCoordinator that wraps every transaction in the cross-process lock.
//
// Services are pure Go with no CGO.
package services
