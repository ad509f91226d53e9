// Package domain contains the core value types of the application: websets
// and their items as returned by the remote search provider, and the flat
// records/tables they are converted into. These types represent business
// concepts only and are intentionally free of infrastructure concerns so they
// can be shared across packages.
package domain
