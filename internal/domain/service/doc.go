// Package service defines interfaces for core domain collaborators.
// These abstract external systems (catalog, broker, token issuer) so that use cases stay pure.
package service
