package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"calgrid/config"
	"calgrid/infras/otel"
	"calgrid/shared/constant"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 resolves stored object keys (staff avatars) into URLs a browser can load.
type S3 interface {
	ObjectURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var _ presigner = (*s3.PresignClient)(nil)

type s3Impl struct {
	presign presigner
	config  *config.Config
	otel    otel.Otel
}

// ObjectURL returns a public URL when a public domain is configured and a presigned GET URL otherwise.
// Absolute URLs pass through untouched and an empty key yields an empty URL.
func (svc *s3Impl) ObjectURL(ctx context.Context, objectKey string, expires time.Duration) (objectURL string, err error) {
	if objectKey == constant.Empty {
		return constant.Empty, nil
	}

	if parsed, parseErr := url.Parse(objectKey); parseErr == nil && parsed.IsAbs() {
		return objectKey, nil
	}

	bucket := svc.config.External.S3.BucketName

	if domain := svc.config.External.S3.PublicDomain; domain != constant.Empty {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(domain, "/"), strings.TrimPrefix(objectKey, "/")), nil
	}

	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ObjectURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	request, err := svc.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to presign object")

		return constant.Empty, fmt.Errorf("failed to presign object: %w", err)
	}

	return request.URL, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return newS3(s3.NewPresignClient(client), config, otel)
}

func newS3(presign presigner, config *config.Config, otel otel.Otel) S3 {
	return &s3Impl{
		presign: presign,
		config:  config,
		otel:    otel,
	}
}
