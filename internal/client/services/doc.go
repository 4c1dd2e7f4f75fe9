// Package services contains the client's application services: the login
// flow that turns credentials into a persisted session, and the page
// services that fetch and shape fixture data for rendering.
package services
