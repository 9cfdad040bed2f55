package store

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-entry-keeper/models"
)

const entriesTable = "entries"

var entryColumns = []string{"id", "user_id", "title", "description", "last_modified"}

func buildInsertEntryQuery(b squirrel.StatementBuilderType, entry models.Entry) (string, []any, error) {
	return b.Insert(entriesTable).
		Columns(entryColumns...).
		Values(entry.ID, entry.UserID, entry.Title, entry.Description, entry.LastModified).
		ToSql()
}

func buildSelectEntryQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildUpdateEntryQuery sets only the provided fields; last_modified is
// always refreshed.
func buildUpdateEntryQuery(b squirrel.StatementBuilderType, id string, update models.UpdateEntryRequest, lastModified int64) (string, []any, error) {
	query := b.Update(entriesTable).Set("last_modified", lastModified)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}

	return query.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
}

func buildDeleteEntryQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(entriesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildListEntriesQuery builds the keyset scan of one user partition. One
// row more than req.Limit is requested so that the caller can tell whether
// another page follows.
func buildListEntriesQuery(b squirrel.StatementBuilderType, req models.EntriesRequest) (string, []any, error) {
	query := b.Select(entryColumns...).
		From(entriesTable).
		Where(squirrel.Eq{"user_id": req.UserID})

	if after := req.After; after != nil {
		query = query.Where(squirrel.Or{
			squirrel.Lt{"last_modified": after.LastModified},
			squirrel.And{
				squirrel.Eq{"last_modified": after.LastModified},
				squirrel.Lt{"id": after.ID},
			},
		})
	}

	return query.
		OrderBy("last_modified DESC", "id DESC").
		Limit(uint64(req.Limit) + 1).
		ToSql()
}
