package mock

import (
	"context"

	"github.com/fwojciec/htmlconv"
)

var _ htmlconv.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of htmlconv.ConversionService.
type ConversionService struct {
	CreateConversionFn func(ctx context.Context, conv *htmlconv.Conversion) error
	FindConversionsFn  func(ctx context.Context, filter htmlconv.ConversionFilter) ([]*htmlconv.Conversion, error)
}

func (s *ConversionService) CreateConversion(ctx context.Context, conv *htmlconv.Conversion) error {
	return s.CreateConversionFn(ctx, conv)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter htmlconv.ConversionFilter) ([]*htmlconv.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}
