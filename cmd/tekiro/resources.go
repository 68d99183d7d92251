package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aliefadha/tekiro-cms/client"
	"github.com/spf13/cobra"
)

func newGroupCmd(use, short string, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(subs...)
	return cmd
}

func listCmd[T any](a *app, key string, list func(context.Context) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndPrint(cmd, a, []string{key}, list)
		},
	}
}

func getCmd[T any](a *app, key string, get func(context.Context, string) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return fetchAndPrint(cmd, a, []string{key, id}, func(ctx context.Context) (T, error) {
				return get(ctx, id)
			})
		},
	}
}

func deleteCmd(a *app, key string, del func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteAndPrint(cmd, a, args[0], del, []string{key}, []string{"dashboard"})
		},
	}
}

// ------------------------- category -------------------------

func newCategoryCmd(a *app) *cobra.Command {
	return newGroupCmd("category", "Manage product categories",
		listCmd(a, "category", func(ctx context.Context) ([]client.Category, error) { return a.client.ListCategories(ctx) }),
		getCmd(a, "category", func(ctx context.Context, id string) (*client.Category, error) { return a.client.GetCategory(ctx, id) }),
		newCategoryCreateCmd(a),
		newCategoryUpdateCmd(a),
		deleteCmd(a, "category", func(ctx context.Context, id string) error { return a.client.DeleteCategory(ctx, id) }),
	)
}

func newCategoryCreateCmd(a *app) *cobra.Command {
	var name, file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category with an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Category, error) {
				return a.client.CreateCategory(ctx, client.CreateCategoryRequest{Name: name, File: upload(file)})
			}, []string{"category"}, []string{"dashboard"})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&file, "file", "", "Image file (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCategoryUpdateCmd(a *app) *cobra.Command {
	var name, file string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a category and optionally replace its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Category, error) {
				return a.client.UpdateCategory(ctx, args[0], client.UpdateCategoryRequest{Name: name, File: optionalUpload(file)})
			}, []string{"category"}, []string{"product"}, []string{"catalog"})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&file, "file", "", "Replacement image (optional)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// ------------------------- product -------------------------

type productFlags struct {
	name, description, categoryID, storeURL string
	files                                   []string
}

func (f *productFlags) bind(cmd *cobra.Command, filesRequired bool) {
	cmd.Flags().StringVar(&f.name, "name", "", "Product name (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.categoryID, "category-id", "", "Category ID (required)")
	cmd.Flags().StringVar(&f.storeURL, "store-url", "", "Online store link (optional)")
	cmd.Flags().StringArrayVar(&f.files, "file", nil, "Image file; repeat for several")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category-id")
	if filesRequired {
		_ = cmd.MarkFlagRequired("file")
	}
}

func (f *productFlags) uploads() []client.Upload {
	out := make([]client.Upload, 0, len(f.files))
	for _, p := range f.files {
		out = append(out, upload(p))
	}
	return out
}

func newProductCmd(a *app) *cobra.Command {
	return newGroupCmd("product", "Manage products",
		listCmd(a, "product", func(ctx context.Context) ([]client.Product, error) { return a.client.ListProducts(ctx) }),
		getCmd(a, "product", func(ctx context.Context, id string) (*client.Product, error) { return a.client.GetProduct(ctx, id) }),
		newProductCreateCmd(a),
		newProductUpdateCmd(a),
		deleteCmd(a, "product", func(ctx context.Context, id string) error { return a.client.DeleteProduct(ctx, id) }),
	)
}

func newProductCreateCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product with one or more images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Product, error) {
				return a.client.CreateProduct(ctx, client.CreateProductRequest{
					Name: f.name, Description: f.description, CategoryID: f.categoryID, StoreURL: f.storeURL, Files: f.uploads(),
				})
			}, []string{"product"}, []string{"dashboard"})
		},
	}
	f.bind(cmd, true)
	return cmd
}

func newProductUpdateCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a product; images are replaced only when --file is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Product, error) {
				return a.client.UpdateProduct(ctx, args[0], client.UpdateProductRequest{
					Name: f.name, Description: f.description, CategoryID: f.categoryID, StoreURL: f.storeURL, Files: f.uploads(),
				})
			}, []string{"product"})
		},
	}
	f.bind(cmd, false)
	return cmd
}

// ------------------------- catalog -------------------------

func newCatalogCmd(a *app) *cobra.Command {
	return newGroupCmd("catalog", "Manage downloadable catalogues",
		listCmd(a, "catalog", func(ctx context.Context) ([]client.Catalog, error) { return a.client.ListCatalogs(ctx) }),
		getCmd(a, "catalog", func(ctx context.Context, id string) (*client.Catalog, error) { return a.client.GetCatalog(ctx, id) }),
		newCatalogCreateCmd(a),
		newCatalogUpdateCmd(a),
		deleteCmd(a, "catalog", func(ctx context.Context, id string) error { return a.client.DeleteCatalog(ctx, id) }),
	)
}

func newCatalogCreateCmd(a *app) *cobra.Command {
	var title, categoryID, file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a catalogue file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Catalog, error) {
				return a.client.CreateCatalog(ctx, client.CreateCatalogRequest{Title: title, CategoryID: categoryID, File: upload(file)})
			}, []string{"catalog"}, []string{"dashboard"})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Category ID (required)")
	cmd.Flags().StringVar(&file, "file", "", "Catalogue file, usually a PDF (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category-id")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCatalogUpdateCmd(a *app) *cobra.Command {
	var title, categoryID, file string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a catalogue and optionally replace its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Catalog, error) {
				return a.client.UpdateCatalog(ctx, args[0], client.UpdateCatalogRequest{Title: title, CategoryID: categoryID, File: optionalUpload(file)})
			}, []string{"catalog"})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Category ID (required)")
	cmd.Flags().StringVar(&file, "file", "", "Replacement file (optional)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category-id")
	return cmd
}

// ------------------------- cordless -------------------------

func newCordlessCmd(a *app) *cobra.Command {
	return newGroupCmd("cordless", "Manage the cordless list",
		listCmd(a, "cordless", func(ctx context.Context) ([]client.CordlessItem, error) { return a.client.ListCordless(ctx) }),
		getCmd(a, "cordless", a.findCordless),
		newCordlessWriteCmd(a, false),
		newCordlessWriteCmd(a, true),
		deleteCmd(a, "cordless", func(ctx context.Context, id string) error { return a.client.DeleteCordless(ctx, id) }),
	)
}

// findCordless looks an item up in the list; the backend has no single-item
// endpoint for cordless.
func (a *app) findCordless(ctx context.Context, id string) (*client.CordlessItem, error) {
	items, err := a.client.ListCordless(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, client.NewAPIError(http.StatusNotFound, fmt.Sprintf("Cordless item %s not found", id), nil)
}

func newCordlessWriteCmd(a *app, update bool) *cobra.Command {
	var req client.CordlessRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a cordless item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.CordlessItem, error) {
				if update {
					return a.client.UpdateCordless(ctx, args[0], req)
				}
				return a.client.CreateCordless(ctx, req)
			}, []string{"cordless"}, []string{"dashboard"})
		},
	}
	if update {
		cmd.Use, cmd.Short, cmd.Args = "update ID", "Update a cordless item", cobra.ExactArgs(1)
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Link, "link", "", "Link")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// ------------------------- article -------------------------

type articleFlags struct {
	title, excerpt, content, contentFile, file, publishedAt string
	seoTitle, seoDescription, seoKeywords                   string
	metaTitle, metaKeywords, metaDescription                string
}

func (f *articleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&f.excerpt, "excerpt", "", "Short summary")
	cmd.Flags().StringVar(&f.content, "content", "", "Body HTML")
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", "Read the body HTML from a file")
	cmd.Flags().StringVar(&f.file, "file", "", "Primary image (optional)")
	cmd.Flags().StringVar(&f.publishedAt, "published-at", "", "Publish time, RFC 3339 (optional; empty keeps a draft)")
	cmd.Flags().StringVar(&f.seoTitle, "seo-title", "", "SEO title")
	cmd.Flags().StringVar(&f.seoDescription, "seo-description", "", "SEO description")
	cmd.Flags().StringVar(&f.seoKeywords, "seo-keywords", "", "SEO keywords")
	cmd.Flags().StringVar(&f.metaTitle, "meta-title", "", "Meta tag title")
	cmd.Flags().StringVar(&f.metaKeywords, "meta-keywords", "", "Meta tag keywords")
	cmd.Flags().StringVar(&f.metaDescription, "meta-description", "", "Meta tag description")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
	_ = cmd.MarkFlagRequired("title")
}

func (f *articleFlags) request() (client.ArticleRequest, error) {
	req := client.ArticleRequest{
		Title:          f.title,
		Excerpt:        f.excerpt,
		ContentHTML:    f.content,
		File:           optionalUpload(f.file),
		SEOTitle:       f.seoTitle,
		SEODescription: f.seoDescription,
		SEOKeywords:    f.seoKeywords,
	}
	if f.contentFile != "" {
		b, err := os.ReadFile(f.contentFile)
		if err != nil {
			return req, err
		}
		req.ContentHTML = string(b)
	}
	if f.publishedAt != "" {
		req.PublishedAt = &f.publishedAt
	}
	if f.metaTitle != "" || f.metaKeywords != "" || f.metaDescription != "" {
		req.MetaTags = &client.MetaTags{Title: f.metaTitle, Keywords: f.metaKeywords, Description: f.metaDescription}
	}
	return req, nil
}

func newArticleCmd(a *app) *cobra.Command {
	return newGroupCmd("article", "Manage articles",
		listCmd(a, "article", func(ctx context.Context) ([]client.Article, error) { return a.client.ListArticles(ctx) }),
		getCmd(a, "article", func(ctx context.Context, id string) (*client.Article, error) { return a.client.GetArticle(ctx, id) }),
		newArticleWriteCmd(a, false),
		newArticleWriteCmd(a, true),
		deleteCmd(a, "article", func(ctx context.Context, id string) error { return a.client.DeleteArticle(ctx, id) }),
	)
}

func newArticleWriteCmd(a *app, update bool) *cobra.Command {
	var f articleFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			return mutateAndPrint(cmd, a, func(ctx context.Context) (*client.Article, error) {
				if update {
					return a.client.UpdateArticle(ctx, args[0], req)
				}
				return a.client.CreateArticle(ctx, req)
			}, []string{"article"}, []string{"dashboard"})
		},
	}
	if update {
		cmd.Use, cmd.Short, cmd.Args = "update ID", "Replace an article's content", cobra.ExactArgs(1)
	}
	f.bind(cmd)
	return cmd
}
