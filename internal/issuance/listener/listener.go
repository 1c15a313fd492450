package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	locdto "github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	EventWorkOrderConsumption = "WorkOrderConsumption"
	// EventConsumptionRejected carries a consumption event that could not be turned into an issuance.
	EventConsumptionRejected = "WorkOrderConsumptionRejected"
)

// MessageReader is the explicit-commit side of a kafka consumer group.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type LocationResolver interface {
	Resolve(ctx context.Context, ref locdto.LocationRef) (model.Location, error)
}

// ConsumptionListener turns work order consumption events from the
// maintenance system into issuances. A message is committed only once it
// is issued, already recorded, or dead-lettered.
type ConsumptionListener struct {
	consumer    MessageReader
	uc          issuance.UseCase
	locations   LocationResolver
	deadLetters broker.Publisher
	logger      logger.ZapLogger
	backoff     time.Duration
	maxAttempts int
}

func NewConsumptionListener(consumer MessageReader, uc issuance.UseCase, locations LocationResolver, deadLetters broker.Publisher, logger logger.ZapLogger) *ConsumptionListener {
	if deadLetters == nil {
		deadLetters = broker.NopPublisher{}
	}
	return &ConsumptionListener{
		consumer:    consumer,
		uc:          uc,
		locations:   locations,
		deadLetters: deadLetters,
		logger:      logger,
		backoff:     time.Second,
		maxAttempts: 3,
	}
}

func (l *ConsumptionListener) Start(ctx context.Context) {
	l.logger.Info("Starting work order consumption listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping work order consumption listener")
			return
		default:
			msg, err := l.consumer.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				if !l.sleep(ctx, l.backoff) {
					return
				}
				continue
			}
			if !l.processMessage(ctx, msg) {
				// Shutting down mid-message; leave it uncommitted for redelivery.
				return
			}
			if err := l.consumer.CommitMessages(ctx, msg); err != nil {
				l.logger.Error("Failed to commit kafka message",
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err))
			}
		}
	}
}

type ConsumptionPayload struct {
	WorkOrderID string          `json:"work_order_id"`
	KitID       string          `json:"kit_id"`
	BoxID       string          `json:"box_id"`
	BoxNumber   string          `json:"box_number"`
	ItemID      string          `json:"item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Technician  string          `json:"technician"`
	Purpose     string          `json:"purpose"`
}

// RejectedConsumption is the dead letter payload.
type RejectedConsumption struct {
	EventID     string          `json:"event_id"`
	WorkOrderID string          `json:"work_order_id,omitempty"`
	Reason      string          `json:"reason"`
	Attempts    int             `json:"attempts"`
	Original    json.RawMessage `json:"original"`
}

// processMessage reports whether msg is settled and may be committed.
func (l *ConsumptionListener) processMessage(ctx context.Context, msg kafka.Message) bool {
	var event broker.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		l.deadLetter(ctx, msg, &RejectedConsumption{EventID: messageID(msg), Reason: err.Error()})
		return true
	}
	if event.EventType != EventWorkOrderConsumption {
		return true
	}
	eventID := event.EventID
	if eventID == "" {
		eventID = messageID(msg)
	}

	var p ConsumptionPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		l.logger.Error("Failed to unmarshal consumption payload", zap.String("event_id", eventID), zap.Error(err))
		l.deadLetter(ctx, msg, &RejectedConsumption{EventID: eventID, Reason: err.Error()})
		return true
	}

	l.logger.Info("Processing work order consumption",
		zap.String("event_id", eventID),
		zap.String("work_order_id", p.WorkOrderID),
		zap.String("item_id", p.ItemID))

	var err error
	attempt := 0
	for attempt < l.maxAttempts {
		attempt++
		err = l.issue(ctx, eventID, &p)
		if err == nil || permanent(err) {
			break
		}
		if ctx.Err() != nil {
			return false
		}
		l.logger.Warn("Consumption failed, retrying",
			zap.String("event_id", eventID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < l.maxAttempts && !l.sleep(ctx, time.Duration(attempt)*l.backoff) {
			return false
		}
	}
	if err == nil {
		return true
	}
	if errors.Is(err, model.ErrIdentityConflict) {
		// A concurrent delivery of the same event won the insert.
		return true
	}

	fields := []zap.Field{
		zap.String("event_id", eventID),
		zap.String("work_order_id", p.WorkOrderID),
		zap.String("item_id", p.ItemID),
		zap.Int("attempts", attempt),
		zap.Error(err),
	}
	if errors.Is(err, model.ErrInsufficientStock) {
		l.logger.Warn("Work order consumed more than the kit holds", fields...)
	} else {
		l.logger.Error("Failed to issue stock for work order", fields...)
	}
	l.deadLetter(ctx, msg, &RejectedConsumption{
		EventID:     eventID,
		WorkOrderID: p.WorkOrderID,
		Reason:      err.Error(),
		Attempts:    attempt,
	})
	return true
}

func (l *ConsumptionListener) issue(ctx context.Context, eventID string, p *ConsumptionPayload) error {
	loc, err := l.locations.Resolve(ctx, locdto.LocationRef{KitID: p.KitID, BoxID: p.BoxID, BoxNumber: p.BoxNumber})
	if err != nil {
		return err
	}
	purpose := p.Purpose
	if purpose == "" {
		purpose = "work order " + p.WorkOrderID
	}
	_, err = l.uc.Issue(ctx, &dto.IssueInput{
		ItemID:        p.ItemID,
		Location:      loc,
		Quantity:      p.Quantity,
		Recipient:     p.Technician,
		Purpose:       purpose,
		WorkOrderID:   p.WorkOrderID,
		UserID:        p.Technician,
		SourceEventID: eventID,
	})
	return err
}

func (l *ConsumptionListener) deadLetter(ctx context.Context, msg kafka.Message, r *RejectedConsumption) {
	if r.Original == nil && json.Valid(msg.Value) {
		r.Original = msg.Value
	}
	evt, err := broker.NewEvent(EventConsumptionRejected, r)
	if err == nil {
		err = l.deadLetters.Publish(ctx, r.WorkOrderID, evt)
	}
	if err != nil {
		l.logger.Error("Failed to dead-letter consumption event",
			zap.String("event_id", r.EventID),
			zap.String("reason", r.Reason),
			zap.Error(err))
	}
}

func (l *ConsumptionListener) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// permanent reports errors that a redelivery cannot fix.
func permanent(err error) bool {
	for _, target := range []error{
		model.ErrInvalidInput,
		model.ErrInvalidQuantity,
		model.ErrInvalidLocation,
		model.ErrNotFound,
		model.ErrInsufficientStock,
		model.ErrIdentityConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func messageID(msg kafka.Message) string {
	return fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
}
