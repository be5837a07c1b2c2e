package repository

import (
	"errors"

	"skilltracker/model"
	"skilltracker/util"

	"gorm.io/gorm"
)

// translate maps driver and gorm errors onto the model sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), util.IsDuplicateKeyError(err):
		return model.ErrDuplicate
	}
	return err
}
