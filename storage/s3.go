package storage

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Archiver uploads attendance log snapshots to an S3 bucket.
type S3Archiver struct {
	Bucket   string
	uploader *s3manager.Uploader
}

func NewS3Archiver(bucket, region, key, secret string) (*S3Archiver, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(key, secret, ""),
	})
	if err != nil {
		return nil, err
	}
	return &S3Archiver{
		Bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (s *S3Archiver) Archive(localPath, name string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	contentType := "text/csv"
	_, err = s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      &s.Bucket,
		Key:         aws.String(name),
		ContentType: &contentType,
		Body:        file,
	})
	return err
}
