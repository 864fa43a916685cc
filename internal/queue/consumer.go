package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/cinebook/internal/receipt"
)

// ConsumerConfig tells the consumer where to write its output.
type ConsumerConfig struct {
	URL        string
	ReceiptDir string
	LogDir     string
}

// StartBookingConsumer connects to RabbitMQ, declares the booking.confirmed
// queue and consumes it until ctx is cancelled.  Each message produces a
// ticket file in ReceiptDir and one line in LogDir/booking.log.  Broker
// failures trigger a reconnect with exponential backoff capped at 30s.
func StartBookingConsumer(ctx context.Context, cfg ConsumerConfig) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, cfg)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, cfg ConsumerConfig) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("booking-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(BookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(BookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleMessage(d.Body, cfg, time.Now()); err != nil {
				log.Printf("booking-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleMessage(body []byte, cfg ConsumerConfig, now time.Time) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	rec, err := ev.Record()
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	// Open the log first so a log failure leaves no orphan receipt.
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.LogDir, "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	path, err := receipt.Write(cfg.ReceiptDir, rec, now)
	if err != nil {
		return err
	}

	line := fmt.Sprintf("[%s] Booking confirmed | booking_id=%s | movie=%q | showtime=%q | total=%d | seats=[%s] | receipt=%s\n",
		ev.ConfirmedAt, ev.BookingID, ev.MovieTitle, ev.Showtime, ev.Total, strings.Join(ev.Seats, ","), path)
	if _, err := f.WriteString(line); err != nil {
		_ = os.Remove(path) // message is dropped, so drop its ticket too
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
