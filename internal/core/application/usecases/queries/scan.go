package queries

import (
	"database/sql"
	"time"

	"vendororders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderColumns is the column list shared by every order-returning query.
// The order must match scanOrderRow.
const orderColumns = `
	id,
	order_number,
	status,
	customer_name,
	customer_phone,
	delivery_address,
	total_amount,
	payment_method,
	payment_status,
	driver_id,
	driver_phone,
	estimated_time,
	rejection_reason,
	created_at,
	accepted_at,
	ready_at,
	delivered_at
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp            OrderResponse
		id              uuid.UUID
		status          int
		paymentMethod   int
		paymentStatus   int
		driverID        sql.NullString
		driverPhone     sql.NullString
		estimatedTime   sql.NullInt64
		rejectionReason sql.NullString
		acceptedAt      sql.NullTime
		readyAt         sql.NullTime
		deliveredAt     sql.NullTime
	)

	err := rows.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.DeliveryAddress,
		&resp.TotalAmount,
		&paymentMethod,
		&paymentStatus,
		&driverID,
		&driverPhone,
		&estimatedTime,
		&rejectionReason,
		&resp.CreatedAt,
		&acceptedAt,
		&readyAt,
		&deliveredAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = id.String()
	resp.Status = order.Status(status).String()
	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	if driverID.Valid {
		resp.DriverID = &driverID.String
	}
	if driverPhone.Valid {
		resp.DriverPhone = &driverPhone.String
	}
	if estimatedTime.Valid {
		eta := int(estimatedTime.Int64)
		resp.EstimatedTime = &eta
	}
	if rejectionReason.Valid {
		resp.RejectionReason = rejectionReason.String
	}
	resp.AcceptedAt = nullTimePtr(acceptedAt)
	resp.ReadyAt = nullTimePtr(readyAt)
	resp.DeliveredAt = nullTimePtr(deliveredAt)

	return resp, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

func newPage(orders []OrderResponse, page, pageSize int, totalCount int64) PagedOrdersResponse {
	return PagedOrdersResponse{
		Orders:     orders,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		HasMore:    int64(page)*int64(pageSize) < totalCount,
	}
}
