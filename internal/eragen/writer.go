package eragen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// Writer stores the generated era table.
type Writer interface {
	Write(ctx context.Context, data []byte) error
}

// putObjectAPI is the part of the S3 client the writer needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewWriter picks a destination from dest: "-" is stdout, s3://bucket/key is an
// S3 object, anything else is a local file path.
func NewWriter(ctx context.Context, dest, region string, stdout io.Writer) (Writer, error) {
	switch {
	case dest == "-":
		return StreamWriter{w: stdout}, nil
	case strings.HasPrefix(dest, s3Scheme):
		bucket, key, err := splitS3(dest)
		if err != nil {
			return nil, err
		}

		opts := []func(*awsconfig.LoadOptions) error{}
		if region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load AWS config: %w", ErrWrite, err)
		}
		return &S3Writer{client: s3.NewFromConfig(cfg), bucket: bucket, key: key}, nil
	default:
		return FileWriter{path: dest}, nil
	}
}

func splitS3(dest string) (bucket, key string, err error) {
	bucket, key, _ = strings.Cut(strings.TrimPrefix(dest, s3Scheme), "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: invalid S3 destination %q", ErrWrite, dest)
	}
	return bucket, key, nil
}

// StreamWriter writes to an io.Writer.
type StreamWriter struct {
	w io.Writer
}

func (s StreamWriter) Write(_ context.Context, data []byte) error {
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// FileWriter replaces a local file atomically.
type FileWriter struct {
	path string
}

func (f FileWriter) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// S3Writer uploads the table as a single object.
type S3Writer struct {
	client putObjectAPI
	bucket string
	key    string
}

func (s *S3Writer) Write(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: s3://%s/%s: %w", ErrWrite, s.bucket, s.key, err)
	}
	return nil
}
