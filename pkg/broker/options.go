// Package broker holds the session configuration shared by the mqttpub and
// mqttsub tools: the command-line flag set, the resulting options record, and
// construction of a connected paho MQTT client from it.
package broker

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
)

// Connection defaults shared by both tools.
const (
	DefaultHost = "localhost"
	DefaultPort = 1883

	// keepAlive is the interval after which the broker considers an idle
	// connection dead.
	keepAlive = 60 * time.Second

	// connectTimeout bounds the initial connection attempt.
	connectTimeout = 10 * time.Second

	// DisconnectQuiesce is the time in milliseconds granted to pending
	// operations on disconnect.
	DisconnectQuiesce = 250
)

// Options is the validated session configuration built from command-line
// flags. It is populated once by flag parsing and read-only afterwards.
type Options struct {
	ClientID string
	Host     string
	Port     int
	Username string
	Password string
	Retain   bool
	Topic    string
}

// AddFlags registers the common flag set on cmd. Short spellings follow the
// classic mosquitto clients: -h is the broker host, so usage help is exposed
// as -H instead of cobra's default -h.
func AddFlags(cmd *cobra.Command, o *Options) {
	f := cmd.Flags()
	f.StringVarP(&o.ClientID, "client-id", "i", "", "MQTT client id (generated if unset)")
	f.StringVarP(&o.Host, "host", "h", DefaultHost, "hostname of the MQTT broker")
	f.IntVarP(&o.Port, "port", "p", DefaultPort, "port of the MQTT broker")
	f.StringVarP(&o.Username, "user", "u", "", "name of the MQTT user")
	f.StringVarP(&o.Password, "password", "P", "", "password of the MQTT user")
	f.BoolVarP(&o.Retain, "retain", "r", false, "retain published messages")
	f.StringVarP(&o.Topic, "topic", "t", "", "MQTT topic (required)")
	f.BoolP("help", "H", false, "show this usage text")
	_ = cmd.MarkFlagRequired("topic")
}

// URL returns the broker address in paho's tcp://host:port form.
func (o *Options) URL() string {
	return fmt.Sprintf("tcp://%s:%d", o.Host, o.Port)
}

// ClientOptions builds paho client options from the configuration: clean
// session, fixed keepalive, bounded connect timeout, and credentials only when
// set. An empty client id yields a generated "<prefix>-<nanos>" id so parallel
// invocations do not collide.
func (o *Options) ClientOptions(idPrefix string) *mqtt.ClientOptions {
	id := o.ClientID
	if id == "" {
		id = fmt.Sprintf("%s-%d", idPrefix, time.Now().UnixNano())
	}

	opts := mqtt.NewClientOptions().
		AddBroker(o.URL()).
		SetClientID(id).
		SetCleanSession(true).
		SetKeepAlive(keepAlive).
		SetConnectTimeout(connectTimeout)

	if o.Username != "" {
		opts.SetUsername(o.Username)
	}
	if o.Password != "" {
		opts.SetPassword(o.Password)
	}

	return opts
}

// Connect creates a client from the configuration and waits for the initial
// connection. Any failure is terminal for the run; there is no retry.
func Connect(o *Options, idPrefix string) (mqtt.Client, error) {
	client := mqtt.NewClient(o.ClientOptions(idPrefix))
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to %s: timeout after %v", o.URL(), connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", o.URL(), err)
	}
	return client, nil
}
