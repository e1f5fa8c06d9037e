package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/htmlconv"
)

// Compile-time interface verification.
var _ htmlconv.ConversionService = (*ConversionService)(nil)

// ConversionService implements htmlconv.ConversionService using SQLite.
type ConversionService struct {
	db   *DB
	tags *TagService
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db, tags: NewTagService(db)}
}

// CreateConversion records a new conversion.
func (s *ConversionService) CreateConversion(ctx context.Context, conv *htmlconv.Conversion) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	if conv.TagID == nil && conv.TagName != "" {
		tag, err := s.tags.FindTagByContent(ctx, conv.TagName, conv.TagContent)
		switch {
		case err == nil:
			conv.TagID = &tag.ID
		case htmlconv.ErrorCode(err) != htmlconv.ENOTFOUND:
			return err
		}
	}

	conv.CreatedAt = time.Now().UTC()

	var tagID sql.NullInt64
	if conv.TagID != nil {
		tagID = sql.NullInt64{Int64: *conv.TagID, Valid: true}
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (tag_id, code, conversion_type, created_at)
		VALUES (?, ?, ?, ?)
	`, tagID, conv.Code, string(conv.Kind), conv.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	conv.ID, err = result.LastInsertId()
	return err
}

// FindConversions retrieves conversions matching the filter, ordered by ID.
func (s *ConversionService) FindConversions(ctx context.Context, filter htmlconv.ConversionFilter) ([]*htmlconv.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, tag_id, code, conversion_type, created_at FROM conversions WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND conversion_type = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.TagID != nil {
		query.WriteString(" AND tag_id = ?")
		args = append(args, *filter.TagID)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []*htmlconv.Conversion
	for rows.Next() {
		var conv htmlconv.Conversion
		var tagID sql.NullInt64
		var kind, createdAt string

		if err := rows.Scan(&conv.ID, &tagID, &conv.Code, &kind, &createdAt); err != nil {
			return nil, err
		}

		if tagID.Valid {
			id := tagID.Int64
			conv.TagID = &id
		}
		conv.Kind = htmlconv.ConversionKind(kind)
		conv.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		convs = append(convs, &conv)
	}

	return convs, rows.Err()
}
