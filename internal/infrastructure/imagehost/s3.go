package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/pkg/config"
)

var _ ports.ImageHost = (*S3Host)(nil)

// s3API subconjunto de *s3.Client que usa el adaptador.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Host adaptador de ImageHost sobre un bucket S3 o MinIO. El publicID es la key del objeto.
type S3Host struct {
	client    s3API
	bucket    string
	folder    string
	publicURL string
	newID     func() string
}

// NewS3Host crea el cliente S3 con credenciales estáticas. Si S3Endpoint está definido
// se usa como BaseEndpoint con path-style (MinIO).
func NewS3Host(ctx context.Context, cfg config.ImageConfig) (*S3Host, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3: S3_BUCKET es obligatorio")
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		if cfg.S3Endpoint != "" {
			publicURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}
	return newS3Host(client, cfg.S3Bucket, cfg.Folder, publicURL), nil
}

func newS3Host(client s3API, bucket, folder, publicURL string) *S3Host {
	return &S3Host{
		client:    client,
		bucket:    bucket,
		folder:    strings.Trim(folder, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
		newID:     func() string { return uuid.NewString()[:8] },
	}
}

// Upload guarda el objeto como <folder>/<slug-del-nombre>-<id>.<ext> y devuelve su URL pública.
func (h *S3Host) Upload(ctx context.Context, img ports.ImageUpload) (*ports.HostedImage, error) {
	width, height, format, err := Inspect(img.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	base := strings.TrimSuffix(path.Base(img.Filename), path.Ext(img.Filename))
	name := slug.Make(base)
	if name == "" {
		name = "image"
	}
	key := path.Join(h.folder, name+"-"+h.newID()+extension(format))

	_, err = h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: put object %s: %w", key, err)
	}
	return &ports.HostedImage{
		URL:      h.publicURL + "/" + key,
		PublicID: key,
		Width:    width,
		Height:   height,
		Format:   format,
	}, nil
}

// Delete borra el objeto; devuelve domain.ErrNotFound si la key no existe.
func (h *S3Host) Delete(ctx context.Context, publicID string) error {
	_, err := h.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("s3: head object %s: %w", publicID, err)
	}
	if _, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	}); err != nil {
		return fmt.Errorf("s3: delete object %s: %w", publicID, err)
	}
	return nil
}
