package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"send-test-order/internal/broker/rabbitmq"
	"send-test-order/internal/config"
	"send-test-order/internal/logger"
	"send-test-order/internal/services/orderpublisher"
)

const serviceName = "send-test-order"

var separator = strings.Repeat("=", 50)

// newLoggerFunc builds the diagnostic logger for a run.
type newLoggerFunc func(verbose bool) (*logger.Logger, error)

func main() {
	app := newApp(os.Stdout, rabbitDialer, func(verbose bool) (*logger.Logger, error) {
		return logger.NewLogger(serviceName, verbose)
	})
	if err := app.Run(os.Args); err != nil {
		// broker failures were already reported on stdout
		if !errors.Is(err, orderpublisher.ErrBrokerOperation) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newApp(out io.Writer, dialer func(*config.Config, *logger.Logger) orderpublisher.Dialer, newLogger newLoggerFunc) *cli.App {
	return &cli.App{
		Name:      serviceName,
		Usage:     "Publish test orders to the order.queue RabbitMQ queue",
		ArgsUsage: "[multiple]",
		Writer:    out,
		// the only positional argument is the mode; "help" and "h" select single mode
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, out, dialer, newLogger)
		},
	}
}

func run(c *cli.Context, out io.Writer, dialer func(*config.Config, *logger.Logger) orderpublisher.Dialer, newLogger newLoggerFunc) error {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // best-effort flush; ignore sync errors

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Default()
	mode := orderpublisher.ParseMode(c.Args().First())
	log.Debug("startup", fmt.Sprintf("Running in %s mode against %s:%d", mode, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))

	fmt.Fprintln(out, "🚀 Sending test orders to RabbitMQ...")
	fmt.Fprintln(out, separator)

	svc := orderpublisher.NewService(dialer(cfg, log), cfg.Queue, out, log)
	if err := svc.Run(ctx, mode); err != nil {
		return err
	}

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, "💡 Tips:")
	fmt.Fprintln(out, "- Check the application logs to follow the processing")
	fmt.Fprintln(out, "- Open http://localhost:8080/swagger-ui.html to try the APIs")
	fmt.Fprintf(out, "- Use '%s multiple' to send several orders\n", serviceName)
	return nil
}

func rabbitDialer(cfg *config.Config, log *logger.Logger) orderpublisher.Dialer {
	return func(ctx context.Context) (orderpublisher.Broker, error) {
		client, err := rabbitmq.NewClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
