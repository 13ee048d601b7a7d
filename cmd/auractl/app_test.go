package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/application/auth"
	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/application/usecase"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/docstore"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/jsonfile"
	apphttp "github.com/jhoicas/auraskin-api/internal/interfaces/http"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "db.json"), nil)
	users := docstore.NewUserRepository(store)
	productUC := usecase.NewProductUseCase(docstore.NewProductRepository(store), nil, nil, "AuraSkin", logger.Nop())
	_, err := productUC.SeedDemo(context.Background())
	require.NoError(t, err)
	_, err = usecase.NewUserUseCase(users).Create(context.Background(), dtoUser())
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "auractl-test"}, logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: productUC,
		UserUC:    usecase.NewUserUseCase(users),
		UploadUC:  usecase.NewUploadUseCase(nil, 1024),
		AuthUC:    auth.NewAuthUseCase(users, docstore.NewSessionRepository(store), auth.JWTConfig{Secret: "s", ExpMinutes: 5}),
		JWTSecret: "s",
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv.URL
}

func runCmd(t *testing.T, url, session, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"-server", url, "-session", session}, args...)
	err := run(context.Background(), full, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRun_ProductsYUsers(t *testing.T) {
	url := newTestServer(t)
	session := filepath.Join(t.TempDir(), "session.json")

	out, err := runCmd(t, url, session, "", "products")
	require.NoError(t, err)
	assert.Contains(t, out, "Rp 375.000")
	assert.Equal(t, 5, strings.Count(out, "\n"), "cabecera + 4 productos demo")

	out, err = runCmd(t, url, session, "", "products", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Rp 375.000")

	_, err = runCmd(t, url, session, "", "products", "get", "99")
	assert.Error(t, err)

	out, err = runCmd(t, url, session, "", "users")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@auraskin.id")
}

func TestRun_LoginWhoamiLogout(t *testing.T) {
	url := newTestServer(t)
	session := filepath.Join(t.TempDir(), "session.json")

	_, err := runCmd(t, url, session, "mala\n", "login", "ana@auraskin.id")
	assert.Error(t, err)

	out, err := runCmd(t, url, session, "secret1\n", "login", "ana@auraskin.id")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")

	out, err = runCmd(t, url, session, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana <ana@auraskin.id> (user)")

	_, err = runCmd(t, url, session, "", "logout")
	require.NoError(t, err)

	out, err = runCmd(t, url, session, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Sin sesión")
}

func TestRun_ComandoDesconocido(t *testing.T) {
	_, err := runCmd(t, "http://127.0.0.1:1", filepath.Join(t.TempDir(), "s.json"), "", "bailar")
	assert.Error(t, err)
}

func dtoUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{Name: "Ana", Email: "ana@auraskin.id", Password: "secret1"}
}
