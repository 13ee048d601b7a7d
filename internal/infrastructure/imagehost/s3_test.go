package imagehost

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

// fakeS3 guarda los objetos en memoria.
type fakeS3 struct {
	objects     map[string][]byte
	contentType map[string]string
	putErr      error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentType: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.contentType[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3Host(fake *fakeS3) *S3Host {
	h := newS3Host(fake, "auraskin", "/auraskin/products/", "http://localhost:9000/auraskin/")
	h.newID = func() string { return "a1b2c3d4" }
	return h
}

func TestS3HostUpload(t *testing.T) {
	fake := newFakeS3()
	h := newTestS3Host(fake)

	got, err := h.Upload(context.Background(), ports.ImageUpload{
		Filename:    "Hydrating Serum.PNG",
		ContentType: "image/png",
		Data:        pngBytes(t, 40, 30),
	})
	require.NoError(t, err)

	assert.Equal(t, "auraskin/products/hydrating-serum-a1b2c3d4.png", got.PublicID)
	assert.Equal(t, "http://localhost:9000/auraskin/auraskin/products/hydrating-serum-a1b2c3d4.png", got.URL)
	assert.Equal(t, 40, got.Width)
	assert.Equal(t, 30, got.Height)
	assert.Equal(t, "png", got.Format)
	assert.Equal(t, "image/png", fake.contentType[got.PublicID])
}

func TestS3HostUpload_BytesNoSonImagen(t *testing.T) {
	h := newTestS3Host(newFakeS3())
	_, err := h.Upload(context.Background(), ports.ImageUpload{Filename: "x.png", ContentType: "image/png", Data: []byte("no")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestS3HostUpload_ErrorPut(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("bucket inexistente")
	h := newTestS3Host(fake)

	_, err := h.Upload(context.Background(), ports.ImageUpload{Filename: "x.png", Data: pngBytes(t, 1, 1)})
	assert.Error(t, err)
}

func TestS3HostDelete(t *testing.T) {
	fake := newFakeS3()
	fake.objects["auraskin/products/a.png"] = []byte("x")
	h := newTestS3Host(fake)

	require.NoError(t, h.Delete(context.Background(), "auraskin/products/a.png"))
	assert.Empty(t, fake.objects)

	err := h.Delete(context.Background(), "auraskin/products/a.png")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
