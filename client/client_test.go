package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ListCategoriesAndResolveAssets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200,"message":"OK","data":[{"id":"c1","name":"Chargers","image":"/img/c1.png"}]}`))
	}))
	defer srv.Close()
	c, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	cats, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Category{{ID: "c1", Name: "Chargers", Image: "/img/c1.png"}}, cats)
	assert.Equal(t, srv.URL+"/img/c1.png", c.AssetURL(cats[0].Image))
	assert.Equal(t, "https://cdn.example.com/x.png", c.AssetURL("https://cdn.example.com/x.png"))
	assert.Empty(t, c.AssetURL(""))
}

func TestScenario_CordlessWithoutToken(t *testing.T) {
	srv, c := newFakeClient(t, tokenstore.NewMemoryStore(""))

	_, err := c.CreateCordless(context.Background(), CordlessRequest{Title: "X", Description: "Y", Link: "https://z"})
	require.NoError(t, err)
	last := srv.LastRequest()
	assert.Empty(t, last.Header.Get("Authorization"))
	assert.Equal(t, "application/json", last.ContentType)
}

func TestScenario_BusinessFailureOnSuccessfulTransport(t *testing.T) {
	srv, c := newFakeClient(t, tokenstore.NewMemoryStore(""))
	_, err := c.GetArticle(context.Background(), "missing-id")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode())
	assert.Equal(t, "Not found", apiErr.Message())
	assert.Equal(t, "/article/missing-id", srv.LastRequest().Path)
}

func TestGenericVerbs(t *testing.T) {
	type page struct {
		Total int `json:"total"`
	}
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.Body != nil {
			var m map[string]any
			_ = json.NewDecoder(r.Body).Decode(&m)
			if m != nil {
				b, _ := json.Marshal(m)
				gotBody = string(b)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200,"message":"OK","data":{"n":1},"meta":{"total":7}}`))
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL), WithTokenStore(tokenstore.NewMemoryStore("stored")))
	require.NoError(t, err)
	ctx := context.Background()

	res, err := Get[map[string]int, page](ctx, c, "/anything")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Data["n"])
	require.NotNil(t, res.Meta)
	assert.Equal(t, 7, res.Meta.Total)
	assert.Equal(t, "Bearer stored", gotAuth)

	_, err = Post[NoData, NoData](ctx, c, "/anything", map[string]string{"a": "b"}, WithHeader("Authorization", "Bearer explicit"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer explicit", gotAuth)
	assert.JSONEq(t, `{"a":"b"}`, gotBody)

	_, err = Put[NoData, NoData](ctx, c, "/anything", NewForm().AddField("a", "b"))
	require.NoError(t, err)
	_, err = Patch[NoData, NoData](ctx, c, "/anything", nil)
	require.NoError(t, err)
	_, err = Delete[NoData, NoData](ctx, c, "/anything")
	require.NoError(t, err)
}

func TestGenericVerbs_RequestOrigin(t *testing.T) {
	var hit bool
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200,"data":null}`))
	}))
	defer other.Close()

	c, err := New(WithBaseURL("http://127.0.0.1:1"))
	require.NoError(t, err)
	_, err = Get[NoData, NoData](context.Background(), c, "/x", WithRequestOrigin(other.URL))
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestEntityMethods_RoundTrip(t *testing.T) {
	srv, c := newFakeClient(t, tokenstore.NewMemoryStore(""))
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

	cat, err := c.CreateCategory(ctx, CreateCategoryRequest{Name: "Chargers", File: Upload{Name: "c.png", Content: png}})
	require.NoError(t, err)
	_, err = c.UpdateCategory(ctx, cat.ID, UpdateCategoryRequest{Name: "Cables"})
	require.NoError(t, err)
	got, err := c.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cables", got.Name)

	p, err := c.CreateProduct(ctx, CreateProductRequest{Name: "P", CategoryID: cat.ID, Files: []Upload{{Name: "p.png", Content: png}}})
	require.NoError(t, err)
	_, err = c.UpdateProduct(ctx, p.ID, UpdateProductRequest{Name: "P2", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = c.GetProduct(ctx, p.ID)
	require.NoError(t, err)

	cl, err := c.CreateCatalog(ctx, CreateCatalogRequest{Title: "T", CategoryID: cat.ID, File: Upload{Name: "t.pdf", Content: []byte("%PDF-1.4\n")}})
	require.NoError(t, err)
	_, err = c.UpdateCatalog(ctx, cl.ID, UpdateCatalogRequest{Title: "T2", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = c.GetCatalog(ctx, cl.ID)
	require.NoError(t, err)

	cd, err := c.CreateCordless(ctx, CordlessRequest{Title: "X"})
	require.NoError(t, err)
	_, err = c.UpdateCordless(ctx, cd.ID, CordlessRequest{Title: "X2"})
	require.NoError(t, err)

	g, err := c.CreateGalleryImage(ctx, GalleryWeb, CreateGalleryImageRequest{Title: "G", File: Upload{Name: "g.png", Content: png}})
	require.NoError(t, err)
	_, err = c.UpdateGalleryImage(ctx, GalleryWeb, g.ID, UpdateGalleryImageRequest{Title: "G2"})
	require.NoError(t, err)
	_, err = c.CreateGalleryImage(ctx, GalleryWeb, CreateGalleryImageRequest{Title: "G", File: Upload{Name: "g.txt", Content: []byte("plain")}})
	assert.ErrorIs(t, err, ErrNotImage)

	a, err := c.CreateArticle(ctx, ArticleRequest{Title: "Hello"})
	require.NoError(t, err)
	_, err = c.UpdateArticle(ctx, a.ID, ArticleRequest{Title: "Hello 2"})
	require.NoError(t, err)

	counts, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Categories)
	assert.Equal(t, 1, counts.Products)
	assert.Equal(t, 1, counts.Catalogs)
	assert.Equal(t, 1, counts.Cordless)
	assert.Equal(t, 1, counts.WebImages)
	assert.Equal(t, 1, counts.Articles)

	require.NoError(t, c.DeleteArticle(ctx, a.ID))
	require.NoError(t, c.DeleteGalleryImage(ctx, GalleryWeb, g.ID))
	require.NoError(t, c.DeleteCordless(ctx, cd.ID))
	require.NoError(t, c.DeleteCatalog(ctx, cl.ID))
	require.NoError(t, c.DeleteProduct(ctx, p.ID))
	require.NoError(t, c.DeleteCategory(ctx, cat.ID))

	for _, coll := range []string{"article", "gallery", "cordless", "catalogue", "product", "category"} {
		assert.Zero(t, srv.Count(coll), coll)
	}
	lists := []func(context.Context) (int, error){
		lenOf(c.ListCategories), lenOf(c.ListProducts), lenOf(c.ListCatalogs),
		lenOf(c.ListCordless), lenOf(c.ListArticles),
	}
	for _, list := range lists {
		n, err := list(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

func TestClient_MissingInputNeverReachesBackend(t *testing.T) {
	srv, c := newFakeClient(t, tokenstore.NewMemoryStore(""))
	ctx := context.Background()

	_, err := c.GetCategory(ctx, "")
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.ErrorIs(t, c.DeleteArticle(ctx, ""), ErrMissingInput)
	_, err = c.CreateCategory(ctx, CreateCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Empty(t, srv.Requests())
}
