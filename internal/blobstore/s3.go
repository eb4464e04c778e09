package blobstore

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type S3Store struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3(region, bucket string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}
	return &S3Store{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
	}, nil
}

// Upload кладёт файл в S3 под случайным ключом, сохраняя расширение,
// и возвращает result.Location.
func (s *S3Store) Upload(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", errors.Wrap(err, "open upload file")
	}
	defer file.Close()

	ext := filepath.Ext(localPath)
	contentType := mime.TypeByExtension(ext)

	result, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(uuid.NewString() + ext),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "upload to s3")
	}
	return result.Location, nil
}
