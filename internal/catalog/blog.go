package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplight/shoplight/internal/domain"
)

// AllBlogPosts returns every published post
func (c *Catalog) AllBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return query(ctx, c, KeyBlogPosts, c.backend.GetAllBlogPosts)
}

// BlogPost returns one post, or nil if the id is unknown
func (c *Catalog) BlogPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	return query(ctx, c, paramKey(KeyBlogPost, id), func(ctx context.Context) (*domain.BlogPost, error) {
		return c.backend.GetBlogPost(ctx, id)
	})
}

// CreateBlogPost publishes a new post and returns its generated id
func (c *Catalog) CreateBlogPost(ctx context.Context, title, content, excerpt string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: blog post title is required", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutCreateBlogPost, func(ctx context.Context) (string, error) {
		return c.backend.CreateBlogPost(ctx, title, content, excerpt)
	})
}

// UpdateBlogPost replaces a post's full field set
func (c *Catalog) UpdateBlogPost(ctx context.Context, id, title, content, excerpt string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: blog post title is required", domain.ErrInvalidInput)
	}
	return mutateVoid(ctx, c, MutUpdateBlogPost, func(ctx context.Context) error {
		return c.backend.UpdateBlogPost(ctx, id, title, content, excerpt)
	})
}

// UpdateExcerpt replaces only a post's excerpt
func (c *Catalog) UpdateExcerpt(ctx context.Context, id, excerpt string) error {
	return mutateVoid(ctx, c, MutUpdateExcerpt, func(ctx context.Context) error {
		return c.backend.UpdateExcerpt(ctx, id, excerpt)
	})
}

// DeleteBlogPost removes a post; the backend also drops its attachments
func (c *Catalog) DeleteBlogPost(ctx context.Context, id string) error {
	return mutateVoid(ctx, c, MutDeleteBlogPost, func(ctx context.Context) error {
		return c.backend.DeleteBlogPost(ctx, id)
	})
}

// AddBlogFile attaches an uploaded file to a post
func (c *Catalog) AddBlogFile(ctx context.Context, blogID string, file domain.Blob) (string, error) {
	return mutate(ctx, c, MutAddBlogFile, func(ctx context.Context) (string, error) {
		return c.backend.AddBlogFile(ctx, blogID, file)
	})
}

// DeleteBlogFile detaches a file from a post
func (c *Catalog) DeleteBlogFile(ctx context.Context, blogID, filePath string) error {
	return mutateVoid(ctx, c, MutDeleteBlogFile, func(ctx context.Context) error {
		return c.backend.DeleteBlogFile(ctx, blogID, filePath)
	})
}

// AddBlogImage embeds an image in a post body
func (c *Catalog) AddBlogImage(ctx context.Context, blogID string, image domain.Blob, position int64, altText, size string) (string, error) {
	return mutate(ctx, c, MutAddBlogImage, func(ctx context.Context) (string, error) {
		return c.backend.AddBlogImage(ctx, blogID, image, position, altText, size)
	})
}

// UpdateBlogImage repositions or relabels an embedded image
func (c *Catalog) UpdateBlogImage(ctx context.Context, blogID, imageID string, position int64, size, altText string) error {
	return mutateVoid(ctx, c, MutUpdateBlogImage, func(ctx context.Context) error {
		return c.backend.UpdateBlogImage(ctx, blogID, imageID, position, size, altText)
	})
}

// DeleteBlogImage removes an embedded image from a post
func (c *Catalog) DeleteBlogImage(ctx context.Context, blogID, imageID string) error {
	return mutateVoid(ctx, c, MutDeleteBlogImage, func(ctx context.Context) error {
		return c.backend.DeleteBlogImage(ctx, blogID, imageID)
	})
}

// UpdateBlogTitle edits the blog section heading in the site content
func (c *Catalog) UpdateBlogTitle(ctx context.Context, title string) error {
	return mutateVoid(ctx, c, MutUpdateBlogTitle, func(ctx context.Context) error {
		return c.backend.UpdateBlogTitle(ctx, title)
	})
}

// UpdateBlogDescription edits the blog section blurb in the site content
func (c *Catalog) UpdateBlogDescription(ctx context.Context, description string) error {
	return mutateVoid(ctx, c, MutUpdateBlogDesc, func(ctx context.Context) error {
		return c.backend.UpdateBlogDescription(ctx, description)
	})
}
