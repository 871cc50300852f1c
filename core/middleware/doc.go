// Package middleware groups HTTP middleware for the Fiber application.
//
//   - auth: API key validation on every request.
//   - rayid: a request id (ray id) stored in the Fiber locals and echoed in
//     the X-Ray-ID response header, picked up by logger.WithRayID.
//
// Both are registered globally in the start command, rayid first.
package middleware
