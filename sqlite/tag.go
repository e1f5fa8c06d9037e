package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/htmlconv"
)

// Compile-time interface verification.
var _ htmlconv.TagService = (*TagService)(nil)

// TagService implements htmlconv.TagService using SQLite.
type TagService struct {
	db *DB
}

// NewTagService creates a new TagService.
func NewTagService(db *DB) *TagService {
	return &TagService{db: db}
}

const tagColumns = "id, run_id, tag_name, tag_content, position, file_name, content_hash, created_at"

// CreateTag records a new tag.
func (s *TagService) CreateTag(ctx context.Context, tag *htmlconv.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}

	tag.ContentHash = hashContent(tag.Content)
	tag.CreatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tags (run_id, tag_name, tag_content, position, file_name, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, tag.RunID, tag.Name, tag.Content, tag.Position, tag.SourceFile, tag.ContentHash,
		tag.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	tag.ID, err = result.LastInsertId()
	return err
}

// FindTags retrieves tags matching the filter, ordered by ID.
func (s *TagService) FindTags(ctx context.Context, filter htmlconv.TagFilter) ([]*htmlconv.Tag, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + tagColumns + " FROM tags WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.SourceFile != nil {
		query.WriteString(" AND file_name = ?")
		args = append(args, *filter.SourceFile)
	}
	if filter.Name != nil {
		query.WriteString(" AND tag_name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*htmlconv.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// FindTagByContent retrieves the lowest-ID tag with the given name and content.
func (s *TagService) FindTagByContent(ctx context.Context, name, content string) (*htmlconv.Tag, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+tagColumns+`
		FROM tags
		WHERE tag_name = ? AND content_hash = ? AND tag_content = ?
		ORDER BY id ASC
		LIMIT 1
	`, name, hashContent(content), content)

	tag, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, htmlconv.Errorf(htmlconv.ENOTFOUND, "tag <%s> with content %q not found", name, content)
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTag(row scanner) (*htmlconv.Tag, error) {
	var tag htmlconv.Tag
	var createdAt string

	if err := row.Scan(&tag.ID, &tag.RunID, &tag.Name, &tag.Content, &tag.Position,
		&tag.SourceFile, &tag.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	tag.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
