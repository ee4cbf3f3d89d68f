package repository

import (
	"employeedocs/cmd/internal/domain/filter"
	"employeedocs/cmd/internal/domain/pagination"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when a write hits a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func matching(pred filter.Predicate) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, cond := range pred {
			db = db.Where(cond.Clause, cond.Args...)
		}
		return db
	}
}

// paginate applies the window on the given id column. The rows come back in
// scan order, Window.Descending included.
func paginate(w pagination.Window, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if op, cursor, ok := w.Boundary(); ok {
			db = db.Where(column+" "+op+" ?", int64(cursor))
		}

		order := column + " ASC"
		if w.Descending {
			order = column + " DESC"
		}

		db = db.Order(order).Limit(w.Fetch())
		if w.Offset > 0 {
			db = db.Offset(w.Offset)
		}
		return db
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
