package notify

import (
	"context"
	"errors"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/bytedance/sonic"
	"github.com/ougirez/revman/internal/revenue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testSnapshot() revenue.PerformanceSnapshot {
	return revenue.PerformanceSnapshot{
		MonthlyAggregate: revenue.MonthlyAggregate{
			Month:             4,
			ForecastOccupancy: 94.5,
			DynamicPrice:      5120.4,
			EstimatedRevenue:  1160000,
			TargetRevenue:     1276000,
			RevPAR:            4833.33,
		},
		GOPPAR: 1600.1,
	}
}

func TestNewPerformanceCard(t *testing.T) {
	card := NewPerformanceCard(7, "Riverside", 2024, testSnapshot())

	assert.Equal(t, "7:2024-04", card.Key())
	assert.Equal(t, revenue.TierExcellent, card.Tier)
	assert.Equal(t, "raise price 5–25%", card.Action)
	assert.Equal(t, 5120.4, card.AverageRate)
}

func TestKafkaPublisherSendsCard(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)

	card := NewPerformanceCard(7, "Riverside", 2024, testSnapshot())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "test.revenue.performance-card" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != card.Key() {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var decoded PerformanceCard
		if err := sonic.Unmarshal(val, &decoded); err != nil {
			return err
		}
		if decoded.Month != 4 || decoded.Tier != revenue.TierExcellent {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewKafkaPublisherWithProducer(producer, "test.")
	require.NoError(t, p.PublishCard(context.Background(), card))
	require.NoError(t, p.PublishCard(context.Background(), card))
	require.NoError(t, p.Close())
}

func TestKafkaPublisherReportsFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisherWithProducer(producer, "")
	err := p.PublishCard(context.Background(), PerformanceCard{PropertyID: 1, Year: 2024, Month: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestKafkaPublisherHonoursContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	p := NewKafkaPublisherWithProducer(producer, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.PublishCard(ctx, PerformanceCard{}), context.Canceled)
	require.NoError(t, p.Close())
}
