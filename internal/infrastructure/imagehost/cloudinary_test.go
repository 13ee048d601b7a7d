package imagehost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

const (
	testCloud  = "demo"
	testKey    = "123456"
	testSecret = "s3cr3t"
)

func newTestCloudinary(srv *httptest.Server) *Cloudinary {
	return NewCloudinary(testCloud, testKey, testSecret, "auraskin/products").WithBaseURL(srv.URL)
}

func TestCloudinaryUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/demo/image/upload"), r.URL.Path)

		assert.Equal(t, testKey, r.FormValue("api_key"))
		assert.Equal(t, "auraskin/products", r.FormValue("folder"))
		assert.Equal(t, "c_limit,h_800,w_800/q_auto", r.FormValue("transformation"))
		assert.NotEmpty(t, r.FormValue("timestamp"))
		assert.NotEmpty(t, r.FormValue("signature"))

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, []byte("fake-bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/auraskin/products/abc.png","public_id":"auraskin/products/abc","width":800,"height":600,"format":"png"}`)
	}))
	defer srv.Close()

	got, err := newTestCloudinary(srv).Upload(context.Background(), ports.ImageUpload{
		Filename:    "serum.png",
		ContentType: "image/png",
		Data:        []byte("fake-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "auraskin/products/abc", got.PublicID)
	assert.Equal(t, 800, got.Width)
	assert.Equal(t, 600, got.Height)
	assert.Equal(t, "png", got.Format)
	assert.Contains(t, got.URL, "https://")
}

func TestCloudinaryUpload_ErrorDelProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid Signature"}}`)
	}))
	defer srv.Close()

	_, err := newTestCloudinary(srv).Upload(context.Background(), ports.ImageUpload{Data: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestCloudinaryDelete(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		wantErr error
	}{
		{name: "ok", result: "ok"},
		{name: "not found", result: "not found", wantErr: domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.True(t, strings.HasSuffix(r.URL.Path, "/demo/image/destroy"), r.URL.Path)
				assert.Equal(t, "auraskin/products/abc", r.FormValue("public_id"))
				assert.NotEmpty(t, r.FormValue("signature"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"result":"`+tt.result+`"}`)
			}))
			defer srv.Close()

			err := newTestCloudinary(srv).Delete(context.Background(), "auraskin/products/abc")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCloudinary_SinCredenciales(t *testing.T) {
	c := NewCloudinary("", "", "", "")
	_, err := c.Upload(context.Background(), ports.ImageUpload{Data: []byte("x")})
	assert.Error(t, err)
	assert.Error(t, c.Delete(context.Background(), "x"))
}
