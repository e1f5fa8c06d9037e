package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/htmlconv"
	main "github.com/fwojciec/htmlconv/cmd/htmlconv"
	"github.com/fwojciec/htmlconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists conversions with tag id or dash", func(t *testing.T) {
		t.Parallel()

		id := int64(3)
		var gotFilter htmlconv.ConversionFilter
		convs := &mock.ConversionService{
			FindConversionsFn: func(_ context.Context, filter htmlconv.ConversionFilter) ([]*htmlconv.Conversion, error) {
				gotFilter = filter
				return []*htmlconv.Conversion{
					{ID: 1, TagID: &id, Code: `link("Link text", "Go")`, Kind: htmlconv.ConversionAuto},
					{ID: 2, Code: "// Smart HTML processor\npackage main", Kind: htmlconv.ConversionSmart},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}

		cmd := &main.ConversionsCmd{Kind: "auto"}
		err := cmd.Run(&main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Conversions: convs,
		})

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Kind)
		assert.Equal(t, htmlconv.ConversionAuto, *gotFilter.Kind)
		assert.Contains(t, stdout.String(), `1  3  auto  link("Link text", "Go")`)
		assert.Contains(t, stdout.String(), "2  -  smart  // Smart HTML processor...")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		cmd := &main.ConversionsCmd{Kind: "manual"}
		err := cmd.Run(&main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Conversions: &mock.ConversionService{},
		})

		assert.Equal(t, htmlconv.EINVALID, htmlconv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown conversion kind")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		cmd := &main.ConversionsCmd{}
		err := cmd.Run(&main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Conversions: &mock.ConversionService{
				FindConversionsFn: func(context.Context, htmlconv.ConversionFilter) ([]*htmlconv.Conversion, error) {
					return nil, nil
				},
			},
		})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No conversions found")
	})
}

func TestTagsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes filters to the store", func(t *testing.T) {
		t.Parallel()

		var gotFilter htmlconv.TagFilter
		tags := &mock.TagService{
			FindTagsFn: func(_ context.Context, filter htmlconv.TagFilter) ([]*htmlconv.Tag, error) {
				gotFilter = filter
				return []*htmlconv.Tag{{ID: 9, RunID: "r1", SourceFile: "a.html", Position: 2, Name: "h1", Content: "Title"}}, nil
			},
		}
		stdout := &bytes.Buffer{}

		cmd := &main.TagsCmd{RunID: "r1", Name: "h1", Limit: 5}
		err := cmd.Run(&main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Tags: tags})

		require.NoError(t, err)
		require.NotNil(t, gotFilter.RunID)
		assert.Equal(t, "r1", *gotFilter.RunID)
		require.NotNil(t, gotFilter.Name)
		assert.Equal(t, "h1", *gotFilter.Name)
		assert.Nil(t, gotFilter.SourceFile)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, "9  r1  a.html:2  h1  Title\n", stdout.String())
	})

	t.Run("returns store errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		tags := &mock.TagService{
			FindTagsFn: func(context.Context, htmlconv.TagFilter) ([]*htmlconv.Tag, error) {
				return nil, errors.New("database is locked")
			},
		}

		cmd := &main.TagsCmd{}
		err := cmd.Run(&main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Tags: tags})

		require.Error(t, err)
		assert.Equal(t, "error: database is locked\n", stderr.String())
	})
}
