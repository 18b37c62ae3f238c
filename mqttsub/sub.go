package main

import (
	"fmt"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/falk-werner/mqtt-tools/pkg/broker"
	"github.com/falk-werner/mqtt-tools/pkg/common"
	"github.com/falk-werner/mqtt-tools/pkg/toolutil"
)

func subCommand() *cobra.Command {
	var opts broker.Options

	cmd := &cobra.Command{
		Use:   "mqttsub",
		Short: "Subscribe to an MQTT topic and print messages",
		Long: "mqttsub subscribes to an MQTT topic at QoS 0 and prints every\n" +
			"message received until interrupted with SIGINT or SIGTERM.",
		Example: "  mqttsub -t test",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, cancel := common.SetupGracefulShutdown()
			defer cancel()

			client, err := broker.Connect(&opts, "mqttsub")
			if err != nil {
				return err
			}
			defer client.Disconnect(broker.DisconnectQuiesce)

			token := client.Subscribe(opts.Topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
				printMessage(msg)
			})
			token.Wait()
			if err := token.Error(); err != nil {
				return fmt.Errorf("subscribe to %s: %w", opts.Topic, err)
			}

			toolutil.PrintSuccess("Subscribed to MQTT topic")
			toolutil.PrintKeyValue("Broker", opts.URL())
			toolutil.PrintKeyValue("Topic", opts.Topic)

			<-ctx.Done()

			if token := client.Unsubscribe(opts.Topic); token.Wait() && token.Error() != nil {
				// Not fatal: the run already succeeded, the broker just did
				// not acknowledge the unsubscribe.
				toolutil.PrintWarning("failed to unsubscribe from %s: %v", opts.Topic, token.Error())
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	broker.AddFlags(cmd, &opts)

	return cmd
}

// printMessage prints one block per arrival. It runs on paho's dispatch
// goroutine and must only format and print.
func printMessage(msg mqtt.Message) {
	retained := "no"
	if msg.Retained() {
		retained = "yes"
	}
	sections := []toolutil.MessageSection{
		{Items: []toolutil.KV{
			{Key: "Message ID", Value: msg.MessageID()},
			{Key: "Topic", Value: msg.Topic()},
			{Key: "Retained", Value: retained},
		}},
	}
	toolutil.PrintColoredMessage("MQTT", sections, msg.Payload(), toolutil.GuessMIME(msg.Payload()))
}
