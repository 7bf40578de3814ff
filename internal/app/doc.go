// Package app resolves (environment, application) paths against the
// configuration store, validating environments before any storage access.
package app
