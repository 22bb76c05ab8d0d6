package worker

import (
	"context"
	"encoding/json"

	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/provider"
	"github.com/stylemart/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer over the service container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderRecordSales, c.handleOrderRecordSales)
}

func (c *Consumer) handleOrderRecordSales(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_record_sales_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderRecordSalesPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_record_sales_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_record_sales_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.SaleService == nil {
		logger.Warnw("worker_order_record_sales_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.SaleService.RecordOrderSales(payload.OrderID); err != nil {
		logger.Warnw("worker_order_record_sales_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
