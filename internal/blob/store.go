package blob

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"github.com/gustydev/messenger-api/config"
	appErrors "github.com/gustydev/messenger-api/pkg/errors"
)

// MaxSize caps attachment and avatar uploads.
const MaxSize = 5 << 20

type Store interface {
	// Store writes the bytes and returns a public URL
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}

// IsImage reports whether the content type names an image, for flows that
// require one (avatars, chat pictures).
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3Store(cfg config.S3) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return nil, err
	}
	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
	}, nil
}

func (s *S3Store) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", appErrors.ErrEmptyAttachment
	}
	if len(data) > MaxSize {
		return "", appErrors.ErrAttachmentTooLarge
	}

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(uuid.New().String()),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", appErrors.Wrap(appErrors.CodeInternal, "failed to store attachment", err)
	}
	return out.Location, nil
}
