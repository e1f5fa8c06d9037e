package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/fwojciec/htmlconv"
)

// Ensure LoggingConversionService implements htmlconv.ConversionService.
var _ htmlconv.ConversionService = (*LoggingConversionService)(nil)

// LoggingConversionService wraps a ConversionService with debug logging.
type LoggingConversionService struct {
	next   htmlconv.ConversionService
	logger *slog.Logger
}

// NewLoggingConversionService creates a new LoggingConversionService.
func NewLoggingConversionService(next htmlconv.ConversionService, logger *slog.Logger) *LoggingConversionService {
	return &LoggingConversionService{next: next, logger: logger}
}

// CreateConversion delegates to the wrapped service and logs the operation.
func (s *LoggingConversionService) CreateConversion(ctx context.Context, conv *htmlconv.Conversion) (err error) {
	defer func(begin time.Time) {
		tagID := "none"
		if conv.TagID != nil {
			tagID = strconv.FormatInt(*conv.TagID, 10)
		}
		s.logger.Info("record conversion",
			"kind", conv.Kind,
			"tag_id", tagID,
			"bytes", len(conv.Code),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateConversion(ctx, conv)
}

// FindConversions delegates to the wrapped service and logs the operation.
func (s *LoggingConversionService) FindConversions(ctx context.Context, filter htmlconv.ConversionFilter) (convs []*htmlconv.Conversion, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find conversions",
			"count", len(convs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindConversions(ctx, filter)
}
