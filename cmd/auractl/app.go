package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/jhoicas/auraskin-api/internal/client"
)

const usage = `uso: auractl [-server URL] [-session FILE] <comando> [args]

comandos:
  products                 lista los productos
  products get <id>        muestra un producto
  products pdf <archivo>   descarga la lista de precios en PDF
  users                    lista los usuarios
  login <email>            inicia sesión (pide el password)
  logout                   cierra la sesión
  whoami                   muestra la sesión guardada
  health                   estado del servidor`

// readPassword se reemplaza en tests para no tocar la terminal.
var readPassword = func(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		return string(pw), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("auractl", flag.ContinueOnError)
	fs.SetOutput(stdout)
	server := fs.String("server", envOr("AURASKIN_URL", "http://localhost:3001"), "URL base de la API")
	sessionPath := fs.String("session", "", "archivo de sesión (por defecto ~/.auraskin/session.json)")
	fs.Usage = func() { fmt.Fprintln(stdout, usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("falta el comando")
	}

	path := *sessionPath
	if path == "" {
		p, err := client.DefaultSessionPath()
		if err != nil {
			return err
		}
		path = p
	}
	api := client.New(*server)
	session := client.NewSession(api, path)
	if _, err := session.Current(); err != nil {
		return err
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "products":
		return runProducts(ctx, api, rest, stdout)
	case "users":
		return runUsers(ctx, api, stdout)
	case "login":
		return runLogin(ctx, session, rest, stdin, stdout)
	case "logout":
		if err := session.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Sesión cerrada")
		return nil
	case "whoami":
		snap, err := session.Current()
		if err != nil {
			return err
		}
		if snap == nil {
			fmt.Fprintln(stdout, "Sin sesión")
			return nil
		}
		fmt.Fprintf(stdout, "%s <%s> (%s)\n", snap.User.Name, snap.User.Email, snap.User.Role)
		return nil
	case "health":
		h, err := api.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s %s\n", h.Status, h.Timestamp)
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("comando desconocido %q", cmd)
	}
}

func runProducts(ctx context.Context, api *client.APIClient, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		products := client.NewProductCollection(api)
		items, err := products.Load(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tSTOCK")
		for _, p := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.PriceDisplay, p.Stock)
		}
		return w.Flush()
	}

	switch args[0] {
	case "get":
		if len(args) < 2 {
			return errors.New("uso: products get <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("id inválido %q", args[1])
		}
		p, err := api.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d no encontrado", id)
		}
		fmt.Fprintf(stdout, "%d %s\n%s\n%s  stock %d  rating %.1f (%d)\n",
			p.ID, p.Name, p.Description, p.PriceDisplay, p.Stock, p.Rating, p.Reviews)
		return nil
	case "pdf":
		if len(args) < 2 {
			return errors.New("uso: products pdf <archivo>")
		}
		pdf, err := api.CatalogPDF(ctx)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], pdf, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Catálogo guardado en %s (%d bytes)\n", args[1], len(pdf))
		return nil
	default:
		return fmt.Errorf("subcomando desconocido %q", args[0])
	}
}

func runUsers(ctx context.Context, api *client.APIClient, stdout io.Writer) error {
	users := client.NewUserCollection(api)
	items, err := users.Load(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL")
	for _, u := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

func runLogin(ctx context.Context, session *client.Session, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("uso: login <email>")
	}
	fmt.Fprint(stdout, "Password: ")
	password, err := readPassword(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return err
	}
	snap, err := session.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Sesión iniciada: %s (%s)\n", snap.User.Name, snap.User.Role)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
