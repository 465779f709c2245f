package configs

// Kafka configures the domain event publisher. An empty broker list keeps
// events in the application log only.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"agrofund.events"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
