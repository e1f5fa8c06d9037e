package htmlconv

import (
	"context"
	"time"
)

// Tag represents one extracted, markup-stripped tag occurrence.
type Tag struct {
	ID          int64     `json:"id"`
	RunID       string    `json:"runId"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	Position    int       `json:"position"`
	SourceFile  string    `json:"sourceFile"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the tag contains invalid fields.
func (t *Tag) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "tag name required")
	}
	if t.Content == "" {
		return Errorf(EINVALID, "tag <%s> content required", t.Name)
	}
	if t.Position < 1 {
		return Errorf(EINVALID, "tag <%s> position must be positive", t.Name)
	}
	return nil
}

// TagService represents the append-only store of extracted tags.
// Tags are never updated or deleted.
type TagService interface {
	// CreateTag records a new tag and sets its ID, hash and timestamp.
	CreateTag(ctx context.Context, tag *Tag) error

	// FindTags retrieves tags matching the filter, ordered by ID.
	FindTags(ctx context.Context, filter TagFilter) ([]*Tag, error)

	// FindTagByContent retrieves the tag with the given name and content.
	// When several tags match, the one with the lowest ID is returned.
	// Returns ENOTFOUND if no tag matches.
	FindTagByContent(ctx context.Context, name, content string) (*Tag, error)
}

// TagFilter represents a filter for FindTags.
type TagFilter struct {
	RunID      *string `json:"runId"`
	SourceFile *string `json:"sourceFile"`
	Name       *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
