// Package domain holds the core types of the configuration API.
//
// A ConfigRecord is the raw document stored for one application in one
// environment. A ConfigView is its client-facing projection. Environments
// is the fixed allow-list of deployment environments acting as partition
// keys into the store.
package domain
