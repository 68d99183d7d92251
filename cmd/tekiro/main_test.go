package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliefadha/tekiro-cms/client"
	"github.com/aliefadha/tekiro-cms/internal/fakecms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

type harness struct {
	t         *testing.T
	srv       *fakecms.Server
	tokenFile string
	dir       string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := fakecms.New("staff@example.com", "secret")
	t.Cleanup(srv.Close)
	dir := t.TempDir()
	return &harness{t: t, srv: srv, tokenFile: filepath.Join(dir, "credentials.json"), dir: dir}
}

// run executes one CLI invocation and returns stdout and the error.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	base := []string{"--api-url", h.srv.URL, "--token-file", h.tokenFile, "--env-file", filepath.Join(h.dir, "none.env")}
	root.SetArgs(append(base, args...))
	err := root.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "tekiro %s", strings.Join(args, " "))
	return out
}

func (h *harness) writeFile(name string, content []byte) string {
	h.t.Helper()
	p := filepath.Join(h.dir, name)
	require.NoError(h.t, os.WriteFile(p, content, 0o600))
	return p
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCLI_LoginWhoAmILogout(t *testing.T) {
	h := newHarness(t)
	h.srv.SetRequireAuth(true)

	_, err := h.run("whoami")
	assert.ErrorIs(t, err, client.ErrNoToken)

	_, err = h.run("login", "--email", "staff@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", client.ErrorMessage(err, fallbackMessage))

	user := decode[client.User](t, h.mustRun("login", "--email", "staff@example.com", "--password", "secret"))
	assert.Equal(t, "staff@example.com", user.Email)

	raw, err := os.ReadFile(h.tokenFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), h.srv.Token)

	who := decode[client.User](t, h.mustRun("whoami"))
	assert.Equal(t, "u1", who.ID)

	// authenticated reads work across invocations
	h.mustRun("category", "list")
	assert.Equal(t, "Bearer "+h.srv.Token, h.srv.LastRequest().Header.Get("Authorization"))

	assert.Contains(t, h.mustRun("logout"), "Logged out")
	_, err = h.run("category", "list")
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode())
}

func TestCLI_CategoryLifecycle(t *testing.T) {
	h := newHarness(t)
	img := h.writeFile("c1.png", pngBytes)

	cat := decode[client.Category](t, h.mustRun("category", "create", "--name", "Chargers", "--file", img))
	assert.Equal(t, "/uploads/c1.png", cat.Image)

	list := decode[[]client.Category](t, h.mustRun("category", "list"))
	require.Len(t, list, 1)

	updated := decode[client.Category](t, h.mustRun("category", "update", cat.ID, "--name", "Cables"))
	assert.Equal(t, "Cables", updated.Name)

	got := decode[client.Category](t, h.mustRun("category", "get", cat.ID))
	assert.Equal(t, "Cables", got.Name)

	del := decode[map[string]any](t, h.mustRun("category", "delete", cat.ID))
	assert.Equal(t, true, del["deleted"])

	_, err := h.run("category", "get", cat.ID)
	assert.Equal(t, "Not found", client.ErrorMessage(err, fallbackMessage))
}

func TestCLI_ProductsCatalogsCordlessArticles(t *testing.T) {
	h := newHarness(t)
	catID := h.srv.Seed("category", fakecms.Record{"name": "Chargers", "image": "/img/c.png"})
	a := h.writeFile("a.png", pngBytes)
	b := h.writeFile("b.png", pngBytes)
	pdf := h.writeFile("range.pdf", []byte("%PDF-1.4\n"))
	body := h.writeFile("body.html", []byte("<p>hello</p>"))

	p := decode[client.Product](t, h.mustRun("product", "create", "--name", "P", "--category-id", catID, "--file", a, "--file", b))
	assert.Equal(t, []string{"/uploads/a.png", "/uploads/b.png"}, p.Images)
	p = decode[client.Product](t, h.mustRun("product", "update", p.ID, "--name", "P", "--category-id", catID, "--store-url", "https://shop"))
	assert.Equal(t, "https://shop", p.StoreURL)
	assert.Len(t, p.Images, 2)

	c := decode[client.Catalog](t, h.mustRun("catalog", "create", "--title", "Range", "--category-id", catID, "--file", pdf))
	assert.Equal(t, "/uploads/range.pdf", c.File)

	cd := decode[client.CordlessItem](t, h.mustRun("cordless", "create", "--title", "X", "--description", "Y", "--link", "https://z"))
	assert.Equal(t, "application/json", h.srv.LastRequest().ContentType)
	cd = decode[client.CordlessItem](t, h.mustRun("cordless", "update", cd.ID, "--title", "X2"))
	assert.Equal(t, "X2", cd.Title)
	got := decode[client.CordlessItem](t, h.mustRun("cordless", "get", cd.ID))
	assert.Equal(t, "X2", got.Title)
	_, err := h.run("cordless", "get", "nope")
	assert.Error(t, err)

	art := decode[client.Article](t, h.mustRun("article", "create", "--title", "Hello World", "--content-file", body,
		"--published-at", "2025-01-02T00:00:00Z", "--meta-keywords", "k"))
	assert.Equal(t, "hello-world", art.Slug)
	assert.Equal(t, "<p>hello</p>", art.ContentHTML)
	require.NotNil(t, art.MetaTags)
	assert.Equal(t, "k", art.MetaTags.Keywords)

	_, err = h.run("article", "create", "--title", "x", "--content", "a", "--content-file", body)
	assert.Error(t, err, "content flags are mutually exclusive")

	counts := decode[client.DashboardCounts](t, h.mustRun("dashboard"))
	assert.Equal(t, client.DashboardCounts{Categories: 1, Products: 1, Catalogs: 1, Cordless: 1, Articles: 1}, counts)
}

func TestCLI_Gallery(t *testing.T) {
	h := newHarness(t)
	img := h.writeFile("g.png", pngBytes)
	txt := h.writeFile("g.txt", []byte("not an image"))

	web := decode[client.GalleryImage](t, h.mustRun("gallery", "create", "--title", "Front", "--file", img))
	assert.Equal(t, client.GalleryWeb, web.Type)

	ig := decode[client.GalleryImage](t, h.mustRun("gallery", "create", "--kind", "instagram", "--title", "Post", "--link", "https://instagram.com/p/1", "--file", img))
	assert.Equal(t, client.GalleryInstagram, ig.Type)

	_, err := h.run("gallery", "create", "--title", "Doc", "--file", txt)
	assert.ErrorIs(t, err, client.ErrNotImage)

	_, err = h.run("gallery", "list", "--kind", "tiktok")
	assert.Error(t, err)

	list := decode[[]client.GalleryImage](t, h.mustRun("gallery", "list", "--kind", "instagram"))
	require.Len(t, list, 1)
	assert.Equal(t, ig.ID, list[0].ID)

	h.mustRun("gallery", "update", "--kind", "instagram", ig.ID, "--title", "Post 2", "--link", "https://instagram.com/p/2")
	h.mustRun("gallery", "delete", web.ID)
	assert.Zero(t, h.srv.Count("gallery"))
}

func TestCLI_AssetURL(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("asset-url", "/img/c1.png", "img/c2.png", "https://cdn.example.com/x.png")
	assert.Equal(t, []string{
		h.srv.URL + "/img/c1.png",
		h.srv.URL + "/img/c2.png",
		"https://cdn.example.com/x.png",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}
