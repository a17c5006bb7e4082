package mqtt

import (
	"fmt"
	"strings"
)

// Defaults
const (
	DefaultTopicPrefix = "android"
	DefaultDevice      = "default"
)

// Config represents MQTT command transport settings
type Config struct {
	Broker      string `yaml:"broker,omitempty" json:"broker,omitempty" long:"broker" description:"broker URL, e.g. tcp://localhost:1883; empty disables MQTT"`
	ClientID    string `yaml:"clientId,omitempty" json:"clientId,omitempty" long:"client-id" description:"client id"`
	Username    string `yaml:"username,omitempty" json:"username,omitempty" long:"username" description:"broker user"`
	Password    string `yaml:"password,omitempty" json:"password,omitempty" long:"password" description:"broker password"`
	TopicPrefix string `yaml:"topicPrefix,omitempty" json:"topicPrefix,omitempty" long:"topic-prefix" description:"topic prefix"`
	Device      string `yaml:"device,omitempty" json:"device,omitempty" long:"device" description:"device segment of the topics, defaults to the serial"`
	QoS         byte   `yaml:"qos,omitempty" json:"qos,omitempty" long:"qos" description:"quality of service"`
}

// Enabled returns true when a broker is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Broker != ""
}

// Init applies defaults
func (c *Config) Init() {
	if c.TopicPrefix == "" {
		c.TopicPrefix = DefaultTopicPrefix
	}
	c.TopicPrefix = strings.Trim(c.TopicPrefix, "/")
	if c.Device == "" {
		c.Device = DefaultDevice
	}
	if c.ClientID == "" {
		c.ClientID = "android-mcp-" + c.Device
	}
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker was empty")
	}
	if c.QoS > 2 {
		return fmt.Errorf("invalid mqtt qos: %v", c.QoS)
	}
	return nil
}

// CommandTopic returns the topic requests are read from
func (c *Config) CommandTopic() string {
	return c.TopicPrefix + "/" + c.Device + "/command"
}

// ResponseTopic returns the topic replies are published to
func (c *Config) ResponseTopic() string {
	return c.TopicPrefix + "/" + c.Device + "/response"
}
