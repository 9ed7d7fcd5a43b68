package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

type AuthenticateCourierQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

func NewAuthenticateCourierQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateCourierQueryHandler {
	return AuthenticateCourierQueryHandler{db: db, hasher: hasher}
}

// Handle returns errs.ErrUnauthorized both for an unknown username and for a
// wrong password.
func (h AuthenticateCourierQueryHandler) Handle(ctx context.Context, query AuthenticateCourierQuery) (CourierView, error) {
	if err := query.Validate(); err != nil {
		return CourierView{}, err
	}

	var rows []struct {
		ID           int64
		Username     string
		PasswordHash string
		Name         string
		Phone        string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, password_hash, name, phone
		FROM couriers
		WHERE username = ?
	`, query.Username()).Scan(&rows).Error
	if err != nil {
		return CourierView{}, storeFailure(err)
	}
	if len(rows) == 0 {
		return CourierView{}, errs.ErrUnauthorized
	}

	row := rows[0]
	if err = h.hasher.Compare(row.PasswordHash, query.Password()); err != nil {
		return CourierView{}, err
	}

	return CourierView{
		ID:       kernel.ID(row.ID),
		Username: row.Username,
		Name:     row.Name,
		Phone:    row.Phone,
	}, nil
}
