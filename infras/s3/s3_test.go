package s3_test

import (
	"calgrid/config"
	"calgrid/infras/otel/mocks"
	"calgrid/infras/s3"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	key     string
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, params *awsS3.GetObjectInput, optFns ...func(*awsS3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}

	opts := awsS3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	f.key = *params.Key
	f.expires = opts.Expires

	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *params.Key + "?sig=1"}, nil
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "avatars"

	return cfg
}

func TestObjectURL(t *testing.T) {
	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		svc := s3.NewWithPresigner(&fakePresigner{}, newConfig(), mocks.NewOtel())

		got, err := svc.ObjectURL(ctx, "", time.Hour)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("absolute url passes through", func(t *testing.T) {
		svc := s3.NewWithPresigner(&fakePresigner{}, newConfig(), mocks.NewOtel())

		got, err := svc.ObjectURL(ctx, "https://cdn.example/a.png", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/a.png", got)
	})

	t.Run("public domain", func(t *testing.T) {
		cfg := newConfig()
		cfg.External.S3.PublicDomain = "https://img.example/"
		svc := s3.NewWithPresigner(&fakePresigner{}, cfg, mocks.NewOtel())

		got, err := svc.ObjectURL(ctx, "/staff/anna.png", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/staff/anna.png", got)
	})

	t.Run("presigned", func(t *testing.T) {
		presign := &fakePresigner{}
		svc := s3.NewWithPresigner(presign, newConfig(), mocks.NewOtel())

		got, err := svc.ObjectURL(ctx, "staff/anna.png", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.example/staff/anna.png?sig=1", got)
		assert.Equal(t, "staff/anna.png", presign.key)
		assert.Equal(t, 15*time.Minute, presign.expires)
	})

	t.Run("presign failure", func(t *testing.T) {
		svc := s3.NewWithPresigner(&fakePresigner{err: errors.New("no creds")}, newConfig(), mocks.NewOtel())

		_, err := svc.ObjectURL(ctx, "staff/anna.png", time.Minute)
		assert.Error(t, err)
	})
}

func TestNew_PresignsWithSDKClient(t *testing.T) {
	cfg := newConfig()
	cfg.External.S3.AccessKeyID = "AKIDEXAMPLE"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.Region = "auto"
	cfg.External.S3.APIEndpoint = "https://storage.example"

	svc := s3.New(cfg, mocks.NewOtel())

	got, err := svc.ObjectURL(context.Background(), "staff/anna.png", 15*time.Minute)
	require.NoError(t, err)

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "storage.example", parsed.Host)
	assert.Equal(t, "/avatars/staff/anna.png", parsed.Path)
	assert.Equal(t, "900", parsed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, parsed.Query().Get("X-Amz-Signature"))
}
