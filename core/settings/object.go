package settings

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"potion-stacker/core/storage"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// ObjectStore keeps settings as a YAML object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store for object in bucket.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// document mirrors Values with optional fields so absent keys keep their defaults.
type document struct {
	StackSize        *int     `yaml:"stack-size"`
	EnabledPotions   []string `yaml:"enabled-potions"`
	UseCustomEffects *bool    `yaml:"use-custom-effects"`
	AllowedEffects   []string `yaml:"allowed-effects"`
}

// Load downloads and decodes the object. A missing object yields Defaults.
func (s *ObjectStore) Load(ctx context.Context) (Values, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return Defaults().Normalize(), nil
		}
		return Values{}, fmt.Errorf("failed to get settings object: %w", err)
	}
	defer reader.Close()

	// MinIO reports a missing key lazily, on first read.
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return Defaults().Normalize(), nil
		}
		return Values{}, fmt.Errorf("failed to read settings object: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Values{}, fmt.Errorf("failed to decode settings object: %w", err)
	}

	values := Defaults()
	if doc.StackSize != nil {
		values.StackSize = *doc.StackSize
	}
	if doc.EnabledPotions != nil {
		values.EnabledPotions = doc.EnabledPotions
	}
	if doc.UseCustomEffects != nil {
		values.UseCustomEffects = *doc.UseCustomEffects
	}
	if doc.AllowedEffects != nil {
		values.AllowedEffects = doc.AllowedEffects
	}
	return values.Normalize(), nil
}

// Save encodes values and uploads them, creating the bucket if needed.
func (s *ObjectStore) Save(ctx context.Context, values Values) error {
	data, err := yaml.Marshal(values.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to put settings object: %w", err)
	}
	return nil
}
