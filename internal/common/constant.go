// Package common contains shared constants and the kinded errors used across
// gophauth components.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the bearer token
// (access or reset) on inbound requests.
const AccessTokenHeaderName = "access_token"

// MinPasswordLength is the shortest password accepted on register, reset and
// change.
const MinPasswordLength = 6
