package imagehost

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

var _ ports.ImageHost = (*Cloudinary)(nil)

// Limita a 800x800 sin agrandar y deja que Cloudinary elija la calidad.
const cloudinaryTransformation = "c_limit,h_800,w_800/q_auto"

// Cloudinary adaptador de ImageHost sobre el SDK oficial (uploads firmados).
type Cloudinary struct {
	cld     *cloudinary.Cloudinary
	folder  string
	initErr error
}

// NewCloudinary construye el adaptador. Las llamadas fallan con error descriptivo si faltan credenciales.
func NewCloudinary(cloudName, apiKey, apiSecret, folder string) *Cloudinary {
	c := &Cloudinary{folder: folder}
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		c.initErr = fmt.Errorf("cloudinary: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY y CLOUDINARY_API_SECRET son obligatorios")
		return c
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		c.initErr = fmt.Errorf("cloudinary: configurar cliente: %w", err)
		return c
	}
	cld.Config.URL.Secure = true
	c.cld = cld
	return c
}

// WithBaseURL apunta el adaptador a otro endpoint (tests, proxies).
func (c *Cloudinary) WithBaseURL(baseURL string) *Cloudinary {
	if c.cld != nil {
		c.cld.Config.API.UploadPrefix = baseURL
	}
	return c
}

// Upload sube la imagen a la carpeta configurada con la transformación de catálogo.
func (c *Cloudinary) Upload(ctx context.Context, img ports.ImageUpload) (*ports.HostedImage, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{
		Folder:         c.folder,
		Transformation: cloudinaryTransformation,
		ResourceType:   "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary: upload: %w", err)
	}
	if msg := errorMessage(resp.Error); msg != "" {
		return nil, fmt.Errorf("cloudinary: upload: %s", msg)
	}
	return &ports.HostedImage{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
	}, nil
}

// Delete borra la imagen; devuelve domain.ErrNotFound cuando Cloudinary responde "not found".
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	if c.initErr != nil {
		return c.initErr
	}

	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("cloudinary: destroy: %w", err)
	}
	if msg := errorMessage(resp.Error); msg != "" {
		return fmt.Errorf("cloudinary: destroy: %s", msg)
	}
	switch resp.Result {
	case "ok":
		return nil
	case "not found":
		return domain.ErrNotFound
	default:
		return fmt.Errorf("cloudinary: destroy devolvió %q", resp.Result)
	}
}

func errorMessage(e api.ErrorResp) string {
	return e.Message
}
