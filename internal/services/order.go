package services

//go:generate mockgen -source=order.go -destination=order_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// OrderPlacedEventType is the type of events published for committed orders.
const OrderPlacedEventType = "order.placed"

// OrderRepository saves an order header with its lines atomically.
type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// OrderService places orders and publishes them to Kafka.
type OrderService struct {
	repo        OrderRepository
	kafkaWriter KafkaWriter
}

// NewOrderService creates a new OrderService. kafkaWriter may be nil.
func NewOrderService(repo OrderRepository, kafkaWriter KafkaWriter) *OrderService {
	return &OrderService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
	}
}

// PlaceOrder validates and stores an order and returns its id.
// Storage failures are reported as ErrOrderFailed; nothing is written in that case.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, items []models.OrderItem, totalAmount float64) (uuid.UUID, error) {
	if err := validateOrder(items, totalAmount); err != nil {
		return uuid.Nil, err
	}

	order := &models.Order{
		OrderID:     uuid.New(),
		UserID:      userID,
		TotalAmount: totalAmount,
		Items:       items,
	}

	if err := s.repo.Save(ctx, order); err != nil {
		logger.Log.Errorw("failed to save order", "userID", userID, "orderID", order.OrderID, "error", err)
		return uuid.Nil, ErrOrderFailed
	}

	s.publishOrder(ctx, order)

	return order.OrderID, nil
}

func validateOrder(items []models.OrderItem, totalAmount float64) error {
	if len(items) == 0 || totalAmount <= 0 {
		return ErrInvalidOrder
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity < 1 || item.Price < 0 {
			return ErrInvalidOrder
		}
	}
	return nil
}

// publishOrder publishes a committed order to Kafka. Failures are only logged.
func (s *OrderService) publishOrder(ctx context.Context, order *models.Order) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "order_id", order.OrderID)
		return
	}

	placedAt := order.CreatedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}

	data, err := json.Marshal(models.OrderPlacedEvent{
		Type:        OrderPlacedEventType,
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		PlacedAt:    placedAt,
	})
	if err != nil {
		logger.Log.Errorw("Failed to marshal order for Kafka", "order_id", order.OrderID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(order.OrderID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish order to Kafka", "order_id", order.OrderID, "error", err)
	} else {
		logger.Log.Infow("Order published to Kafka", "order_id", order.OrderID, "total_amount", order.TotalAmount)
	}
}
