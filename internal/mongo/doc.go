// Package mongo provides MongoDB connectivity and the read-only
// configuration repository.
//
// One collection per permitted environment lives inside the configured
// database. The repository exposes list and find-one operations only; no
// write capability exists on the type.
package mongo
