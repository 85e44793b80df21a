package s3

import (
	"calgrid/config"
	"calgrid/infras/otel"
)

type Presigner = presigner

func NewWithPresigner(presign Presigner, config *config.Config, otel otel.Otel) S3 {
	return newS3(presign, config, otel)
}
