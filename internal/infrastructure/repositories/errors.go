package repositories

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "club-site.backend/internal/domain/errors"
)

// translateError maps driver-level errors onto domain sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.ErrConflict
	default:
		return err
	}
}

func collect[M any, E any](ms []M, conv func(*M) *E) []*E {
	items := make([]*E, 0, len(ms))
	for i := range ms {
		items = append(items, conv(&ms[i]))
	}
	return items
}
