// Package device manages registered IoT devices.
//
// Every device belongs to exactly one owner, assigned at creation and
// never reassignable. All single-device lookups filter by owner in the
// same query that filters by ID, so a device that exists but belongs to
// someone else is indistinguishable from one that does not exist.
package device
