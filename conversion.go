package htmlconv

import (
	"context"
	"time"
	"unicode/utf8"
)

// ConversionKind identifies which generator produced a conversion.
type ConversionKind string

// ConversionKind constants.
const (
	ConversionAuto  ConversionKind = "auto"
	ConversionSmart ConversionKind = "smart"
)

// SmartCodeLimit is the number of characters of a smart program kept in
// its conversion record.
const SmartCodeLimit = 500

// TruncationMarker is appended to code cut by TruncateCode.
const TruncationMarker = "..."

// Conversion represents one generated code unit.
//
// TagID is a weak reference: it may be nil, and it is kept as-is even when
// no tag with that ID exists.
type Conversion struct {
	ID        int64          `json:"id"`
	TagID     *int64         `json:"tagId"`
	Code      string         `json:"code"`
	Kind      ConversionKind `json:"kind"`
	CreatedAt time.Time      `json:"createdAt"`

	// TagName and TagContent are lookup hints used when TagID is nil.
	// They are not persisted.
	TagName    string `json:"-"`
	TagContent string `json:"-"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.Code == "" {
		return Errorf(EINVALID, "conversion code required")
	}
	switch c.Kind {
	case ConversionAuto, ConversionSmart:
	default:
		return Errorf(EINVALID, "unknown conversion kind %q", c.Kind)
	}
	return nil
}

// ConversionService represents the append-only store of generated code.
type ConversionService interface {
	// CreateConversion records a new conversion and sets its ID and timestamp.
	// If TagID is nil and TagName/TagContent are set, the conversion is
	// associated with the lowest-ID tag having that name and content, or
	// left unassociated if there is none.
	CreateConversion(ctx context.Context, conv *Conversion) error

	// FindConversions retrieves conversions matching the filter, ordered by ID.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	Kind  *ConversionKind `json:"kind"`
	TagID *int64          `json:"tagId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TruncateCode returns code unchanged if it has at most limit characters.
// Otherwise it returns the first limit characters followed by TruncationMarker.
func TruncateCode(code string, limit int) string {
	if utf8.RuneCountInString(code) <= limit {
		return code
	}
	n := 0
	for i := range code {
		if n == limit {
			return code[:i] + TruncationMarker
		}
		n++
	}
	return code
}
