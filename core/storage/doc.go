// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to hold the media side of minted assets:
// image files are uploaded here before minting, and the resulting public
// URL becomes the asset's on-ledger image reference. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//
// EnsureBucket combines the first two at startup so uploads never race
// bucket creation on a fresh deployment.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config)
//	info, err := client.PutObject(ctx, cfg.Bucket, name, reader, size, opts)
//	imageRef := storage.PublicURL(cfg, name)
package storage
