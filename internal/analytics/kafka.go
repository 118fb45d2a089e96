package analytics

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"github.com/tallybot/tally/internal/models"
)

// kafkaEmitter publishes counting events to Kafka. When no brokers are
// configured, or the brokers cannot be reached at startup, the emitter
// runs disabled and every emit is a no-op.
type kafkaEmitter struct {
	producer sarama.AsyncProducer
	topic    string
	enabled  bool
}

// NewKafka creates a new Kafka-backed emitter. A nil config or an empty
// broker list yields a disabled emitter rather than an error, so the
// game keeps running without an analytics pipeline.
func NewKafka(cfg *Config) (Emitter, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		log.Println("No Kafka brokers configured, analytics disabled")
		return &kafkaEmitter{enabled: false}, nil
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Return.Successes = false
	config.Producer.Return.Errors = true
	config.Producer.Retry.Max = 3

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, config)
	if err != nil {
		log.Printf("Kafka producer not available: %v (analytics disabled)", err)
		return &kafkaEmitter{enabled: false}, nil
	}

	emitter := &kafkaEmitter{
		producer: producer,
		topic:    topic,
		enabled:  true,
	}

	// Drain the error channel so the producer never blocks
	go func() {
		for producerErr := range producer.Errors() {
			log.Printf("Error publishing analytics event: %v", producerErr.Err)
		}
	}()

	log.Printf("Kafka producer connected, publishing to %s", topic)

	return emitter, nil
}

// EmitCountEvent publishes a processed count attempt
func (e *kafkaEmitter) EmitCountEvent(event *models.CountEvent) {
	if !e.enabled || event == nil {
		return
	}

	e.send(&Envelope{
		Kind:      KindCount,
		Event:     event,
		EmittedAt: time.Now(),
	})
}

// EmitMilestone publishes a named milestone reached by the game
func (e *kafkaEmitter) EmitMilestone(milestone string, event *models.CountEvent) {
	if !e.enabled || event == nil {
		return
	}

	e.send(&Envelope{
		Kind:      KindMilestone,
		Milestone: milestone,
		Event:     event,
		EmittedAt: time.Now(),
	})
}

// send marshals and queues an envelope on the producer
func (e *kafkaEmitter) send(envelope *Envelope) {
	data, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("Error marshaling analytics event: %v", err)
		return
	}

	// Key by channel so events for one game stay ordered per partition
	e.producer.Input() <- &sarama.ProducerMessage{
		Topic: e.topic,
		Key:   sarama.StringEncoder(envelope.Event.ChannelID),
		Value: sarama.ByteEncoder(data),
	}
}

// Close flushes any buffered events and releases the producer
func (e *kafkaEmitter) Close() error {
	if e.producer != nil {
		return e.producer.Close()
	}

	return nil
}
