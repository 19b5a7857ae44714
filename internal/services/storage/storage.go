// Package storage resolves the publicly fetchable URL for an uploaded
// source file, either from the platform's public storage endpoint or as a
// presigned S3 GET URL.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"notebook-relay/internal/config"
	"notebook-relay/internal/models"
)

// FileURLResolver turns a storage object path into a URL the automation
// workflow can fetch the file from.
type FileURLResolver interface {
	Resolve(ctx context.Context, filePath string) (string, error)
}

// NewResolver picks the resolver from the configuration: presigned S3 URLs
// when a bucket is configured, otherwise the platform's public storage URL.
func NewResolver(ctx context.Context, cfg *config.Config) (FileURLResolver, error) {
	if cfg.S3Bucket != "" {
		return NewS3Resolver(ctx, cfg.S3Bucket)
	}
	return NewPublicResolver(cfg.SupabaseURL), nil
}

// PublicResolver builds public object URLs under the platform base URL.
type PublicResolver struct {
	baseURL string
}

// NewPublicResolver creates a resolver rooted at the platform base URL.
func NewPublicResolver(baseURL string) *PublicResolver {
	return &PublicResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve joins the base storage location with the object path.
func (r *PublicResolver) Resolve(_ context.Context, filePath string) (string, error) {
	if r.baseURL == "" {
		return "", models.NewRelayError(models.ErrorKindConfig,
			"SUPABASE_URL environment variable is not set")
	}
	return r.baseURL + "/storage/v1/object/public/sources/" + strings.TrimLeft(filePath, "/"), nil
}

// S3Resolver issues presigned GET URLs for source files stored in S3.
type S3Resolver struct {
	presignClient *s3.PresignClient
	bucketName    string
}

// NewS3Resolver creates a resolver backed by a presign client.
func NewS3Resolver(ctx context.Context, bucket string) (*S3Resolver, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &S3Resolver{
		presignClient: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucketName:    bucket,
	}, nil
}

// Resolve generates a presigned GET URL valid long enough for the
// automation workflow to fetch the file.
func (r *S3Resolver) Resolve(ctx context.Context, filePath string) (string, error) {
	presignedReq, err := r.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(strings.TrimLeft(filePath, "/")),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", models.WrapRelayError(models.ErrorKindInternal, err,
			"failed to presign file URL for %s", filePath)
	}

	return presignedReq.URL, nil
}
