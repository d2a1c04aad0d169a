package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/rendau/sens/adapters/sms"
	"github.com/rendau/sens/adapters/sms/sens"
	"github.com/rendau/sens/logger/zap"
	"github.com/rendau/sens/tools"
)

const defaultEnvFile = ".env"

var newHttpC = sens.NewHttpC

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "sens",
		Short:        "Send SMS/LMS messages through the NCloud SENS api",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file to load before reading the environment")

	root.AddCommand(newSendCmd(&envFile), newSendRequestCmd(&envFile))

	return root
}

func newSendCmd(envFile *string) *cobra.Command {
	var to, text string

	cmd := &cobra.Command{
		Use:     "send",
		Short:   "Send a single message, type is chosen by its byte length",
		Example: "  sens send --to 010-1234-5678 --text 'Hello World!'",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, *envFile, true, func(ctx context.Context, client *sens.St) (*sms.SendRepSt, error) {
				return client.Send(ctx, to, text)
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "receiver phone number")
	cmd.Flags().StringVar(&text, "text", "", "message content")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newSendRequestCmd(envFile *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "send-request",
		Short:   "Send a message request read from a json file as is",
		Example: "  sens send-request --file request.json\n  cat request.json | sens send-request --file -",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			return run(cmd, *envFile, false, func(ctx context.Context, client *sens.St) (*sms.SendRepSt, error) {
				return client.SendRequest(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "-", "path to the request json, - for stdin")

	return cmd
}

// run sends with the env config. The shorthand send needs SENS_CALLING_NUMBER,
// a structured request carries its own "from".
func run(cmd *cobra.Command, envFile string, needCallingNumber bool, fn func(context.Context, *sens.St) (*sms.SendRepSt, error)) error {
	conf, err := loadConf(envFile)
	if err != nil {
		return err
	}

	if needCallingNumber && conf.CallingNumber == "" {
		return errors.New("SENS_CALLING_NUMBER is required")
	}

	lg := zap.New(conf.LogLevel, conf.Debug)
	defer lg.Sync()

	ctx, cancel := tools.StopSignalContext(cmd.Context())
	defer cancel()

	client := sens.New(
		lg,
		newHttpC(lg, &http.Client{}, conf.HttpTimeout),
		conf.credential(),
		conf.CallingNumber,
	)

	rep, err := fn(ctx, client)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func readRequest(stdin io.Reader, file string) (*sms.MessageRequestSt, error) {
	var r io.Reader = stdin

	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	req := &sms.MessageRequestSt{}

	err := json.NewDecoder(r).Decode(req)
	if err != nil {
		return nil, err
	}

	return req, nil
}
