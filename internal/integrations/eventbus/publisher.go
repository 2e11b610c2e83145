// Package eventbus публикует события записей в Kafka.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

// MessageWriter часть kafka.Writer, нужная издателю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	defaultQueueSize = 1024
	maxBatchSize     = 100
)

// Publisher подписчик хранилища записей, пересылающий события в топик.
// Publish только ставит сообщение в ограниченную очередь; отправляет одна горутина,
// поэтому сообщения уходят в порядке вызовов Publish. При переполненной очереди
// событие отбрасывается с предупреждением в логе.
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
	logger  Logger

	mu     sync.Mutex
	queue  chan outgoing
	closed bool
	done   chan struct{}
}

type outgoing struct {
	msg           kafka.Message
	eventType     domain.EventType
	appointmentID string
}

// NewWriter создает kafka.Writer для топика событий
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    maxBatchSize,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewPublisher создает издателя событий и запускает отправку
func NewPublisher(writer MessageWriter, logger Logger) *Publisher {
	return newPublisher(writer, defaultQueueSize, logger)
}

func newPublisher(writer MessageWriter, queueSize int, logger Logger) *Publisher {
	p := &Publisher{
		writer:  writer,
		timeout: 5 * time.Second,
		logger:  logger,
		queue:   make(chan outgoing, queueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish ставит событие в очередь и не ждёт брокера: мутация записи уже зафиксирована
func (p *Publisher) Publish(ctx context.Context, event domain.AppointmentEvent) {
	msg, err := NewMessage(ctx, event)
	if err != nil {
		p.logger.Error("PublishEvent: event id=%s: %v", event.ID, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.Warn("PublishEvent: publisher is closed, dropped type=%s, appointment=%s", event.Type, event.Appointment.ID)
		return
	}

	select {
	case p.queue <- outgoing{msg: msg, eventType: event.Type, appointmentID: event.Appointment.ID}:
	default:
		p.logger.Warn("PublishEvent: queue is full, dropped type=%s, appointment=%s", event.Type, event.Appointment.ID)
	}
}

func (p *Publisher) run() {
	defer close(p.done)

	for first := range p.queue {
		batch := []outgoing{first}
	collect:
		for len(batch) < maxBatchSize {
			select {
			case next, ok := <-p.queue:
				if !ok {
					break collect
				}
				batch = append(batch, next)
			default:
				break collect
			}
		}
		p.send(batch)
	}
}

func (p *Publisher) send(batch []outgoing) {
	msgs := make([]kafka.Message, 0, len(batch))
	for _, out := range batch {
		msgs = append(msgs, out.msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		for _, out := range batch {
			p.logger.Error("PublishEvent: type=%s, appointment=%s: %v", out.eventType, out.appointmentID, err)
		}
		return
	}
	for _, out := range batch {
		p.logger.Info("PublishEvent: type=%s, appointment=%s", out.eventType, out.appointmentID)
	}
}

// Close дожидается отправки очереди и закрывает writer
func (p *Publisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}

// Payload тело сообщения
type Payload struct {
	EventID     string    `json:"eventId"`
	EventType   string    `json:"eventType"`
	OccurredAt  time.Time `json:"occurredAt"`
	Appointment struct {
		ID          string    `json:"id"`
		ClientID    string    `json:"clientId"`
		ClientName  string    `json:"clientName"`
		ClientPhone string    `json:"clientPhone"`
		MasterID    string    `json:"masterId"`
		ServiceIDs  []string  `json:"serviceIds"`
		StartTime   time.Time `json:"startTime"`
		EndTime     time.Time `json:"endTime"`
		Status      string    `json:"status"`
	} `json:"appointment"`
}

// NewMessage собирает сообщение: ключ это мастер, чтобы события одного мастера шли по порядку
func NewMessage(ctx context.Context, event domain.AppointmentEvent) (kafka.Message, error) {
	var payload Payload
	payload.EventID = event.ID
	payload.EventType = string(event.Type)
	payload.OccurredAt = event.OccurredAt

	a := event.Appointment
	payload.Appointment.ID = a.ID
	payload.Appointment.ClientID = a.ClientID
	payload.Appointment.ClientName = a.ClientName
	payload.Appointment.ClientPhone = a.ClientPhone
	payload.Appointment.MasterID = a.MasterID
	payload.Appointment.ServiceIDs = a.ServiceIDs
	payload.Appointment.StartTime = a.StartTime
	payload.Appointment.EndTime = a.EndTime
	payload.Appointment.Status = string(a.Status)

	body, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal payload: %w", err)
	}

	carrier := &headerCarrier{headers: []kafka.Header{
		{Key: HeaderEventID, Value: []byte(event.ID)},
		{Key: HeaderEventType, Value: []byte(event.Type)},
	}}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	return kafka.Message{
		Key:     []byte(a.MasterID),
		Value:   body,
		Headers: carrier.headers,
		Time:    event.OccurredAt,
	}, nil
}

// HeaderValue значение заголовка сообщения
func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	return HeaderValue(c.headers, key)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
