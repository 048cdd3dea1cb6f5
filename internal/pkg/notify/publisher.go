package notify

import (
	"context"
	"fmt"
	"github.com/IBM/sarama"
	"github.com/bytedance/sonic"
	"github.com/ougirez/revman/internal/revenue"
)

const TopicPerformanceCard = "revenue.performance-card"

// PerformanceCard is what the push-messaging layer renders for one month.
type PerformanceCard struct {
	PropertyID       int64        `json:"property_id"`
	PropertyName     string       `json:"property_name"`
	Year             int          `json:"year"`
	Month            int          `json:"month"`
	Occupancy        float64      `json:"occupancy"`
	AverageRate      float64      `json:"average_rate"`
	EstimatedRevenue float64      `json:"estimated_revenue"`
	TargetRevenue    float64      `json:"target_revenue"`
	RevPAR           float64      `json:"revpar"`
	GOPPAR           float64      `json:"goppar"`
	Tier             revenue.Tier `json:"tier"`
	Action           string       `json:"action"`
}

func NewPerformanceCard(propertyID int64, propertyName string, year int, s revenue.PerformanceSnapshot) PerformanceCard {
	rec := revenue.RecommendByOccupancy(s.Month, s.ForecastOccupancy)
	return PerformanceCard{
		PropertyID:       propertyID,
		PropertyName:     propertyName,
		Year:             year,
		Month:            s.Month,
		Occupancy:        s.ForecastOccupancy,
		AverageRate:      s.DynamicPrice,
		EstimatedRevenue: s.EstimatedRevenue,
		TargetRevenue:    s.TargetRevenue,
		RevPAR:           s.RevPAR,
		GOPPAR:           s.GOPPAR,
		Tier:             rec.Tier,
		Action:           rec.Action,
	}
}

func (c PerformanceCard) Key() string {
	return fmt.Sprintf("%d:%d-%02d", c.PropertyID, c.Year, c.Month)
}

type Publisher interface {
	PublishCard(ctx context.Context, card PerformanceCard) error
	Close() error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topicPrefix string, cfg *sarama.Config) (*KafkaPublisher, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("sarama.NewSyncProducer: %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, topicPrefix), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topicPrefix + TopicPerformanceCard}
}

func (p *KafkaPublisher) PublishCard(ctx context.Context, card PerformanceCard) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := sonic.Marshal(card)
	if err != nil {
		return fmt.Errorf("sonic.Marshal: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(card.Key()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("producer.SendMessage: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
