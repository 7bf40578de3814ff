// Package server implements the HTTPS surface using the Echo framework.
//
// Two read endpoints (list and detail) sit behind the shared-key gate;
// mutating verbs land on a fixed not-implemented failure. Every response,
// including framework-level errors, is rendered as JSON.
package server
