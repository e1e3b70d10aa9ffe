package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	model "github.com/glkeru/checkin/internal/models"
	"github.com/segmentio/kafka-go"
)

type KafkaEvents struct {
	writer *kafka.Writer
}

func GetNewWriter(topic string) (events *KafkaEvents, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_PORT is not set")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkaurl + ":" + kafkaport),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaEvents{writer}, nil
}

// Публикация события коммита для внешних потребителей
func (k *KafkaEvents) Publish(ctx context.Context, event model.CommitEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(int64(event.Identity), 10)),
		Value: data,
	})
}

func (k *KafkaEvents) CloseWriter() {
	k.writer.Close()
}
