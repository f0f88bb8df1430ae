package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-media",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	cfg := storage.Config{Bucket: "media", Region: "us-east-1"}

	t.Run("AlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(true, nil)

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket")
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "media", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("CheckFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, errors.New("connection refused"))

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.Error(t, err)
		client.AssertNotCalled(t, "MakeBucket")
	})

	t.Run("CreateFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "media", mock.Anything).Return(errors.New("access denied"))

		err := storage.EnsureBucket(context.Background(), client, cfg)
		assert.Error(t, err)
	})
}

func TestPublicURL(t *testing.T) {
	t.Run("PlainEndpoint", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "localhost:9000", Bucket: "media"}
		assert.Equal(t, "http://localhost:9000/media/nft/cat.png", storage.PublicURL(cfg, "nft/cat.png"))
	})

	t.Run("SSLAndScheme", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "https://s3.amazonaws.com", Bucket: "media", UseSSL: true}
		assert.Equal(t, "https://s3.amazonaws.com/media/nft/cat.png", storage.PublicURL(cfg, "nft/cat.png"))
	})
}
