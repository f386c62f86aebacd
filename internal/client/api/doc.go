// Package api contains the client-side HTTP building blocks for authgate.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Transport interface) for the
//     outbound verbs the authentication flow needs: Post, Get, Put.
//  2. A concrete net/http implementation (see HTTPTransport) that bounds
//     every call with a timeout, tags requests with an X-Request-Id, and
//     maps transport failures and HTTP statuses to *errx.Error values.
//  3. The wire DTOs of the authentication endpoint (see LoginRequest and
//     LoginResponse), kept separate from the domain models.
//
// # Error Handling
//
// Every failure surfaces as *errx.Error with a user-presentable message.
// An error that is already *errx.Error is propagated unchanged, never
// re-wrapped. The transport performs exactly one outbound call per
// invocation; retry policy belongs to the caller.
package api
