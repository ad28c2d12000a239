// Package storage provides the object storage client the benchmark measures.
//
// It wraps the MinIO Go client behind a four-operation interface (list, put,
// get, remove) so that the runner can be exercised against a mock in unit
// tests. The wrapper works with AWS S3 and any S3-compatible endpoint.
//
// # Operations
//
//   - ListObjects: Returns the first page of a listing, capped at maxKeys.
//   - PutObject: Uploads a payload of known size.
//   - GetObject: Returns the object body as a stream.
//   - RemoveObject: Deletes a single object.
//
// # Timeouts
//
// NewClient installs an HTTP transport that bounds dialing, the TLS handshake
// and the wait for response headers. Nothing else is bounded.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	objects, err := client.ListObjects(ctx, "bench", 10)
package storage
