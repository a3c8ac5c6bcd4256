// Package s3 publica las exportaciones CSV en un bucket S3 o compatible (MinIO, R2).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/pkg/config"
)

var _ ports.ExportUploader = (*Uploader)(nil)

// exportPrefix carpeta dentro del bucket.
const exportPrefix = "exports"

// putObjectAPI subconjunto del cliente S3 que usa el uploader.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader sube archivos con PutObject.
type Uploader struct {
	client putObjectAPI
	bucket string
}

// New construye el uploader a partir de EXPORT_S3_BUCKET, S3_REGION, S3_KEY, S3_SECRET
// y S3_ENDPOINT (vacío para AWS).
func New(ctx context.Context, cfg config.ExportConfig) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: EXPORT_S3_BUCKET no configurado")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsConf, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración: %w", err)
	}

	var clientOpts []func(*s3.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // MinIO
		})
	}
	return NewWithClient(s3.NewFromConfig(awsConf, clientOpts...), cfg.Bucket), nil
}

// NewWithClient permite inyectar el cliente (tests).
func NewWithClient(client putObjectAPI, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket}
}

// Upload guarda body bajo exports/<name> y devuelve la URI s3://.
func (u *Uploader) Upload(ctx context.Context, name, contentType string, body []byte) (string, error) {
	key := path.Join(exportPrefix, name)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3: put %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}
