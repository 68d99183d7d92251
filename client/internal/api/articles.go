package api

import (
	"context"

	"github.com/aliefadha/tekiro-cms/client/internal/form"
	"github.com/aliefadha/tekiro-cms/client/internal/rest"
	"github.com/aliefadha/tekiro-cms/client/internal/types"
)

// ListArticles returns all articles.
func ListArticles(ctx context.Context, r *rest.Requester) ([]types.Article, error) {
	res, err := rest.Get[[]types.Article, rest.NoData](ctx, r, articlePath)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetArticle returns one article.
func GetArticle(ctx context.Context, r *rest.Requester, id string) (*types.Article, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	res, err := rest.Get[types.Article, rest.NoData](ctx, r, itemPath(articlePath, id))
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func articleForm(req types.ArticleRequest) (*form.Form, error) {
	f := form.New().
		AddField("title", req.Title).
		AddField("excerpt", req.Excerpt).
		AddField("contentHtml", req.ContentHTML)
	if req.File != nil {
		if err := addUpload(f, "file", *req.File); err != nil {
			return nil, err
		}
	}
	if req.PublishedAt != nil {
		f.AddField("publishedAt", *req.PublishedAt)
	}
	if req.SEOTitle != "" {
		f.AddField("seoTitle", req.SEOTitle)
	}
	if req.SEODescription != "" {
		f.AddField("seoDescription", req.SEODescription)
	}
	if req.SEOKeywords != "" {
		f.AddField("seoKeywords", req.SEOKeywords)
	}
	if req.MetaTags != nil {
		f.AddJSON("metaTags", req.MetaTags)
	}
	return f, nil
}

// CreateArticle publishes or drafts a new article.
func CreateArticle(ctx context.Context, r *rest.Requester, req types.ArticleRequest) (*types.Article, error) {
	f, err := articleForm(req)
	if err != nil {
		return nil, err
	}
	res, err := rest.Post[types.Article, rest.NoData](ctx, r, articlePath, f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// UpdateArticle replaces an article's content.
func UpdateArticle(ctx context.Context, r *rest.Requester, id string, req types.ArticleRequest) (*types.Article, error) {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return nil, err
	}
	f, err := articleForm(req)
	if err != nil {
		return nil, err
	}
	res, err := rest.Patch[types.Article, rest.NoData](ctx, r, itemPath(articlePath, id), f)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// DeleteArticle removes an article.
func DeleteArticle(ctx context.Context, r *rest.Requester, id string) error {
	if err := types.ValidateIDPresent(id, "id"); err != nil {
		return err
	}
	_, err := rest.Delete[rest.NoData, rest.NoData](ctx, r, itemPath(articlePath, id))
	return err
}
