package kafka

import (
	"fmt"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"

	"github.com/Kishanjee7/finhealth/pkg/tlsutil"
)

// Config holds Kafka connection parameters.
type Config struct {
	ClientID string

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN" or "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables TLS for Kafka connections. TLSCAFile overrides the
	// system roots.
	TLS         bool
	TLSCAFile   string
	SASLEnabled bool

	// AutoCreateTopics lets writers create missing topics on the broker.
	AutoCreateTopics bool
}

// transport builds the kafka-go transport for the configured security
// settings. A nil transport means the library default.
func (c Config) transport() (*kafkago.Transport, error) {
	if !c.TLS && !c.SASLEnabled && c.ClientID == "" {
		return nil, nil
	}

	t := &kafkago.Transport{ClientID: c.ClientID}
	if c.TLS {
		tlsCfg, err := tlsutil.ClientTLSConfig(c.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("kafka tls: %w", err)
		}
		t.TLS = tlsCfg
	}
	if c.SASLEnabled {
		mechanism, err := c.saslMechanism()
		if err != nil {
			return nil, err
		}
		t.SASL = mechanism
	}
	return t, nil
}

func (c Config) saslMechanism() (sasl.Mechanism, error) {
	switch strings.ToUpper(c.SASLMechanism) {
	case "", "PLAIN":
		return plain.Mechanism{Username: c.SASLUsername, Password: c.SASLPassword}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, c.SASLUsername, c.SASLPassword)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, c.SASLUsername, c.SASLPassword)
	default:
		return nil, fmt.Errorf("kafka: unsupported SASL mechanism %q", c.SASLMechanism)
	}
}
