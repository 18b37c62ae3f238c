package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/falk-werner/mqtt-tools/pkg/broker"
	"github.com/falk-werner/mqtt-tools/pkg/toolutil"
)

func pubCommand() *cobra.Command {
	var (
		opts    broker.Options
		message string
	)

	cmd := &cobra.Command{
		Use:   "mqttpub",
		Short: "Publish a message to an MQTT topic",
		Long: "mqttpub publishes a single message to an MQTT broker.\n" +
			"The message is sent once at QoS 0 and the tool exits.",
		Example: "  mqttpub -t test -m hello",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; runtime errors should not re-print usage.
			cmd.SilenceUsage = true

			client, err := broker.Connect(&opts, "mqttpub")
			if err != nil {
				return err
			}
			defer client.Disconnect(broker.DisconnectQuiesce)

			toolutil.PrintSuccess("Connected to MQTT broker")
			toolutil.PrintKeyValue("Broker", opts.URL())
			toolutil.PrintKeyValue("Topic", opts.Topic)
			toolutil.PrintKeyValue("Retain", opts.Retain)

			token := client.Publish(opts.Topic, 0, opts.Retain, message)
			token.Wait()
			if err := token.Error(); err != nil {
				return fmt.Errorf("publish to %s: %w", opts.Topic, err)
			}

			toolutil.PrintInfo("Published %d bytes to %s", len(message), opts.Topic)
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	broker.AddFlags(cmd, &opts)
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to publish (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
