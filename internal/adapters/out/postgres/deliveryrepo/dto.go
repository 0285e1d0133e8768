// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. The order reference carries a unique index so the
// database itself rejects a second delivery for the same order.
package deliveryrepo

import (
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
	Address      string    `gorm:"type:varchar(512);not null"`
	Notes        string    `gorm:"type:text"`
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	Version      int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		DriverID:     aggregate.DriverID().Bytes(),
		Status:       aggregate.Status().String(),
		Address:      aggregate.Address(),
		Notes:        aggregate.Notes(),
		DispatchedAt: aggregate.DispatchedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.RestoreDeliveryParams{
		ID:           id,
		OrderID:      orderID,
		DriverID:     driverID,
		Status:       delivery.Status(dto.Status),
		Address:      dto.Address,
		Notes:        dto.Notes,
		DispatchedAt: dto.DispatchedAt,
		DeliveredAt:  dto.DeliveredAt,
		Version:      dto.Version,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}
