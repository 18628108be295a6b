package accountrepo

import (
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents a delivery person's ledger account row.
type AccountDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255)"`
	Balance int64     `gorm:"not null"`
	Version int64     `gorm:"not null"`
}

// TableName overrides the table name.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts a domain account to a DTO.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Balance: aggregate.Balance().Amount(),
		Version: aggregate.Version(),
	}
}

// toDomain converts a DTO to a domain account.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, balance, dto.Version)
}
