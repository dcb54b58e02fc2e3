// Package orderrepo persists order aggregates. It maps the aggregate to an
// orders row plus one order_items row per line item and reconstructs it via
// RestoreOrder, so every order read from the database passes the same
// invariant checks as a freshly created one.
package orderrepo

import (
	"time"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. The
// customer and driver snapshots are denormalized into the row: they are
// immutable captures, not references to live entities.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex"`
	Status          int        `gorm:"index"`
	CustomerID      uuid.UUID  `gorm:"type:uuid"`
	CustomerName    string     `gorm:""`
	CustomerPhone   string     `gorm:""`
	DeliveryAddress string     `gorm:""`
	TotalAmount     int64      `gorm:""`
	PaymentMethod   int        `gorm:""`
	PaymentStatus   int        `gorm:""`
	DriverID        *string    `gorm:"index"`
	DriverPhone     *string    `gorm:""`
	EstimatedTime   *int       `gorm:""`
	RejectionReason string     `gorm:""`
	CreatedAt       time.Time  `gorm:"index"`
	AcceptedAt      *time.Time `gorm:""`
	ReadyAt         *time.Time `gorm:""`
	DeliveredAt     *time.Time `gorm:""`
	Version         int64      `gorm:""`
	Items           []ItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line item. Items are written once with the order and
// never updated afterwards.
type ItemDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID     uuid.UUID `gorm:"type:uuid"`
	Name           string    `gorm:""`
	Quantity       int       `gorm:""`
	UnitPrice      int64     `gorm:""`
	Customizations []string  `gorm:"serializer:json"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID, driverPhone *string
	if driver := aggregate.Driver(); driver != nil {
		id := driver.ID()
		phone := driver.Phone()
		driverID = &id
		driverPhone = &phone
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Amount(),
			Customizations: item.Customizations(),
		})
	}

	customer := aggregate.Customer()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		Status:          int(aggregate.Status()),
		CustomerID:      customer.ID().Bytes(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		DeliveryAddress: customer.Address(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		DriverID:        driverID,
		DriverPhone:     driverPhone,
		EstimatedTime:   aggregate.EstimatedTime(),
		RejectionReason: aggregate.RejectionReason(),
		CreatedAt:       aggregate.CreatedAt(),
		AcceptedAt:      aggregate.AcceptedAt(),
		ReadyAt:         aggregate.ReadyAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(customerID, dto.CustomerName, dto.CustomerPhone, dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Name, itemDTO.Quantity, unitPrice, itemDTO.Customizations)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var driver *order.Driver
	if dto.DriverID != nil && dto.DriverPhone != nil {
		d, driverErr := order.NewDriver(*dto.DriverID, *dto.DriverPhone)
		if driverErr != nil {
			return nil, driverErr
		}
		driver = &d
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		OrderNumber:     dto.OrderNumber,
		Customer:        customer,
		Items:           items,
		TotalAmount:     totalAmount,
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:   order.PaymentStatus(dto.PaymentStatus),
		Status:          order.Status(dto.Status),
		Driver:          driver,
		EstimatedTime:   dto.EstimatedTime,
		RejectionReason: dto.RejectionReason,
		CreatedAt:       dto.CreatedAt,
		AcceptedAt:      dto.AcceptedAt,
		ReadyAt:         dto.ReadyAt,
		DeliveredAt:     dto.DeliveredAt,
		Version:         dto.Version,
	})
}
