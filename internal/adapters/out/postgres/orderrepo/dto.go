// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and delivery assignment. The version column
// backs the optimistic concurrency check in Update.
type OrderDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	DeliveryPersonID *uuid.UUID       `gorm:"type:uuid;index"`
	PaymentMethod    string           `gorm:"type:varchar(64);not null"`
	Status           int              `gorm:"index"`
	IsPaid           bool             `gorm:"not null"`
	PaidAt           *time.Time       ``
	DeliveredAt      *time.Time       ``
	ReturnReason     string           `gorm:"type:text"`
	Version          int64            `gorm:"not null"`
	Transactions     []TransactionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TransactionDTO represents the database structure for persisting ledger transactions.
// Links to the owning order via foreign key. Rows are appended by requests and
// mutated once by the terminal approve/reject transition, never deleted.
type TransactionDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryPersonID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type             string     `gorm:"type:varchar(16);not null"`
	Amount           int64      `gorm:"not null"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	ApprovedBy       *uuid.UUID `gorm:"type:uuid"`
	RejectionReason  string     `gorm:"type:text"`
	CreatedAt        time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for ledger transactions.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional delivery assignment and the
// owned ledger transactions.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	transactions := make([]TransactionDTO, 0, len(aggregate.Transactions()))
	for _, transaction := range aggregate.Transactions() {
		transactions = append(transactions, transactionFromDomain(aggregate.ID(), transaction))
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		UserID:           aggregate.User().Bytes(),
		DeliveryPersonID: deliveryPersonID,
		PaymentMethod:    aggregate.PaymentMethod().String(),
		Status:           int(aggregate.Status()),
		IsPaid:           aggregate.IsPaid(),
		PaidAt:           aggregate.PaidAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		ReturnReason:     aggregate.ReturnReason(),
		Version:          aggregate.Version(),
		Transactions:     transactions,
	}
}

func transactionFromDomain(orderID kernel.UUID, transaction *order.Transaction) TransactionDTO {
	var approvedBy *uuid.UUID
	if id := transaction.ApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedBy = &raw
	}

	return TransactionDTO{
		ID:               transaction.ID().Bytes(),
		OrderID:          orderID.Bytes(),
		DeliveryPersonID: transaction.DeliveryPerson().Bytes(),
		Type:             transaction.Type().String(),
		Amount:           transaction.Amount().Amount(),
		Status:           transaction.Status().String(),
		ApprovedBy:       approvedBy,
		RejectionReason:  transaction.RejectionReason(),
		CreatedAt:        transaction.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the ledger using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		dpID, dpErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if dpErr != nil {
			return nil, dpErr
		}

		deliveryPersonID = &dpID
	}

	transactions := make([]*order.Transaction, 0, len(dto.Transactions))
	for _, transactionDTO := range dto.Transactions {
		transaction, txErr := transactionToDomain(transactionDTO)
		if txErr != nil {
			return nil, txErr
		}
		transactions = append(transactions, transaction)
	}

	return order.RestoreOrder(
		id,
		userID,
		deliveryPersonID,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.IsPaid,
		dto.PaidAt,
		dto.DeliveredAt,
		dto.ReturnReason,
		transactions,
		dto.Version,
	)
}

func transactionToDomain(dto TransactionDTO) (*order.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryPersonID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	var approvedBy *kernel.UUID
	if dto.ApprovedBy != nil {
		abID, abErr := kernel.UUIDFromBytes((*dto.ApprovedBy)[:])
		if abErr != nil {
			return nil, abErr
		}

		approvedBy = &abID
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreTransaction(
		id,
		deliveryPersonID,
		order.TransactionType(dto.Type),
		amount,
		order.TransactionStatus(dto.Status),
		approvedBy,
		dto.RejectionReason,
		dto.CreatedAt,
	)
}
