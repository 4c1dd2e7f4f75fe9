// Package client contains the transports the EJC Digital CLI talks to.
//
// # Overview
//
//  1. Fixtures: the static JSON documents that act as the application's
//     database (users.json, members.json, events.json, relics.json). See
//     FixtureClient and HTTPFixtureClient.
//  2. Liturgy: the third-party daily-readings provider. See LiturgyClient and
//     HTTPLiturgyClient.
//
// Every document is decoded into its typed model right at this boundary, so
// nothing untyped leaks into the services or the renderer.
//
// # Error Handling
//
// Failures are reported with sentinel errors that callers match with
// errors.Is: ErrConnection (transport), ErrServer (non-2xx, wrapped in a
// *StatusError carrying the code), ErrDataFormat (body is not JSON) and
// ErrSchema (JSON of the wrong shape).
package client
