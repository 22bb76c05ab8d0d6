package queue

import (
	"encoding/json"

	"github.com/stylemart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderRecordSales records per-product and per-category sales
	// once an order is delivered.
	TaskOrderRecordSales = constants.TaskOrderRecordSales
)

// OrderRecordSalesPayload carries the delivered order to record.
type OrderRecordSalesPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderRecordSalesTask creates a sales recording task.
func NewOrderRecordSalesTask(payload OrderRecordSalesPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderRecordSales, body), nil
}
