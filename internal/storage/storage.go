// Package storage publishes finished WebM assets. The default store keeps
// them in the local output directory; the S3 store additionally uploads
// each artifact to a bucket.
package storage

import "context"

// Store publishes a converted asset from its local path.
type Store interface {
	// Publish makes the artifact available at its final destination and
	// returns a URL when one exists. Local-only stores return an empty
	// URL: the file already sits at its final path.
	Publish(ctx context.Context, localPath string) (string, error)
}
