package mock

import (
	"context"

	"github.com/fwojciec/htmlconv"
)

var _ htmlconv.TagService = (*TagService)(nil)

// TagService is a mock implementation of htmlconv.TagService.
type TagService struct {
	CreateTagFn        func(ctx context.Context, tag *htmlconv.Tag) error
	FindTagsFn         func(ctx context.Context, filter htmlconv.TagFilter) ([]*htmlconv.Tag, error)
	FindTagByContentFn func(ctx context.Context, name, content string) (*htmlconv.Tag, error)
}

func (s *TagService) CreateTag(ctx context.Context, tag *htmlconv.Tag) error {
	return s.CreateTagFn(ctx, tag)
}

func (s *TagService) FindTags(ctx context.Context, filter htmlconv.TagFilter) ([]*htmlconv.Tag, error) {
	return s.FindTagsFn(ctx, filter)
}

func (s *TagService) FindTagByContent(ctx context.Context, name, content string) (*htmlconv.Tag, error) {
	return s.FindTagByContentFn(ctx, name, content)
}
