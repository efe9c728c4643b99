package event

import (
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/rahulladumor/portfolio-api/internal/config"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicContactEvents   = "contact.events"
)

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
	ContactEventsWriter   *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		PortfolioEventsWriter: portfolioWriter,
		ContactEventsWriter:   contactWriter,
	}, nil
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
