// Package principal models the authenticated caller of an operation.
//
// A Principal is a value object combining a user id with a role; the system
// keeps no user store of its own and trusts the identity resolved by the
// transport layer. Roles gate access to shipments: exporters see and modify
// only shipments they own, admins see everything.
package principal
