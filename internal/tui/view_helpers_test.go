package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-entry-keeper/internal/collection"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "abc", max: 5, want: "abc"},
		{name: "exact", in: "abcde", max: 5, want: "abcde"},
		{name: "cut", in: "abcdefgh", max: 6, want: "abc..."},
		{name: "tiny", in: "abcdef", max: 2, want: "ab"},
		{name: "runes", in: "привет мир", max: 7, want: "прив..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestIsRefusal(t *testing.T) {
	assert.True(t, isRefusal(service.ErrBusy))
	assert.True(t, isRefusal(fmt.Errorf("load more: %w", service.ErrNoMorePages)))
	assert.False(t, isRefusal(service.ErrFetchFailed))
	assert.False(t, isRefusal(nil))
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "Server is unavailable", humanizeError(errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")))
	assert.Contains(t, humanizeError(collection.ErrNotFound), "reload")
	assert.Equal(t, "entry not found", humanizeError(errors.New("entry not found")))
}

func TestTableColumns_MarksSortedColumn(t *testing.T) {
	columns := tableColumns(sorting.Descriptor{Column: sorting.ColumnDescription, Direction: sorting.Ascending})

	assert.Len(t, columns, len(sorting.Columns()))
	assert.Equal(t, "1 Title", columns[0].Title)
	assert.Equal(t, "2 Description ▲", columns[1].Title)
	assert.Equal(t, "3 Last modified", columns[2].Title)

	columns = tableColumns(sorting.DefaultDescriptor())
	assert.Equal(t, "3 Last modified ▼", columns[2].Title)
}
