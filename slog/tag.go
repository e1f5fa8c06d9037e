// Package slog provides logging decorators for htmlconv services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlconv"
)

// Ensure LoggingTagService implements htmlconv.TagService.
var _ htmlconv.TagService = (*LoggingTagService)(nil)

// LoggingTagService wraps a TagService with debug logging.
type LoggingTagService struct {
	next   htmlconv.TagService
	logger *slog.Logger
}

// NewLoggingTagService creates a new LoggingTagService.
func NewLoggingTagService(next htmlconv.TagService, logger *slog.Logger) *LoggingTagService {
	return &LoggingTagService{next: next, logger: logger}
}

// CreateTag delegates to the wrapped service and logs the operation.
func (s *LoggingTagService) CreateTag(ctx context.Context, tag *htmlconv.Tag) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record tag",
			"tag", tag.Name,
			"position", tag.Position,
			"id", tag.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTag(ctx, tag)
}

// FindTags delegates to the wrapped service and logs the operation.
func (s *LoggingTagService) FindTags(ctx context.Context, filter htmlconv.TagFilter) (tags []*htmlconv.Tag, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find tags",
			"count", len(tags),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTags(ctx, filter)
}

// FindTagByContent delegates to the wrapped service and logs the operation.
func (s *LoggingTagService) FindTagByContent(ctx context.Context, name, content string) (tag *htmlconv.Tag, err error) {
	defer func(begin time.Time) {
		var id int64
		if tag != nil {
			id = tag.ID
		}
		s.logger.Info("find tag by content",
			"tag", name,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTagByContent(ctx, name, content)
}
