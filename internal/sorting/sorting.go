// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sorting produces display orderings of entries without touching the
// order in which they are stored or paged.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-entry-keeper/models"
)

// Column names a sortable entry field.
type Column string

const (
	ColumnTitle        Column = "title"
	ColumnDescription  Column = "description"
	ColumnLastModified Column = "lastModified"
)

// Direction is the sort direction of a [Descriptor].
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

var (
	ErrUnknownColumn    = errors.New("unknown sort column")
	ErrUnknownDirection = errors.New("unknown sort direction")
)

// comparators maps every sortable column to a typed comparison of that field.
var comparators = map[Column]func(a, b models.Entry) int{
	ColumnTitle: func(a, b models.Entry) int {
		return cmp.Compare(a.Title, b.Title)
	},
	ColumnDescription: func(a, b models.Entry) int {
		return cmp.Compare(a.Description, b.Description)
	},
	ColumnLastModified: func(a, b models.Entry) int {
		return cmp.Compare(a.LastModified, b.LastModified)
	},
}

// Columns lists the sortable columns in display order.
func Columns() []Column {
	return []Column{ColumnTitle, ColumnDescription, ColumnLastModified}
}

// Descriptor is the user-chosen display order. It is presentation state only.
type Descriptor struct {
	Column    Column
	Direction Direction
}

// DefaultDescriptor orders the newest entries first.
func DefaultDescriptor() Descriptor {
	return Descriptor{Column: ColumnLastModified, Direction: Descending}
}

// Toggle returns the descriptor that results from selecting column:
// the same column flips direction, another column starts ascending.
func (d Descriptor) Toggle(column Column) Descriptor {
	if d.Column == column {
		if d.Direction == Ascending {
			return Descriptor{Column: column, Direction: Descending}
		}
		return Descriptor{Column: column, Direction: Ascending}
	}
	return Descriptor{Column: column, Direction: Ascending}
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s", d.Column, d.Direction)
}

// ParseColumn validates a column name.
func ParseColumn(s string) (Column, error) {
	c := Column(s)
	if _, ok := comparators[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
	}
	return c, nil
}

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Ascending, Descending:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// ParseDescriptor builds a descriptor from configured names. An empty column
// means the default descriptor; an empty direction means ascending.
func ParseDescriptor(column, direction string) (Descriptor, error) {
	if column == "" {
		if direction != "" {
			return Descriptor{}, fmt.Errorf("%w: direction %q without a column", ErrUnknownColumn, direction)
		}
		return DefaultDescriptor(), nil
	}

	c, err := ParseColumn(column)
	if err != nil {
		return Descriptor{}, err
	}

	d := Ascending
	if direction != "" {
		if d, err = ParseDirection(direction); err != nil {
			return Descriptor{}, err
		}
	}

	return Descriptor{Column: c, Direction: d}, nil
}

// Project returns a new slice with entries ordered by d. The sort is stable
// and descending negates the comparator, so ties keep their input order in
// both directions. The input slice is never modified. An unknown column
// yields a copy in input order.
func Project(entries []models.Entry, d Descriptor) []models.Entry {
	out := slices.Clone(entries)

	compare, ok := comparators[d.Column]
	if !ok {
		return out
	}

	if d.Direction == Descending {
		slices.SortStableFunc(out, func(a, b models.Entry) int { return compare(b, a) })
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
