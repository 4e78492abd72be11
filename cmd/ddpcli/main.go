// ddpcli sends DDP packets over UDP to exercise an LED strip endpoint
// such as a WLED device or simulator.
//
// Examples:
//
//	ddpcli -color blue
//	ddpcli -color red -host 192.168.1.100
//	ddpcli -pattern rainbow -leds 30
//	ddpcli -pattern cycle -delay 0.5
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ledsuite/ddpcli/internal/ddp"
	"github.com/ledsuite/ddpcli/internal/pixel"
	"github.com/ledsuite/ddpcli/internal/runner"
)

var (
	host       = flag.String("host", "localhost", "target hostname or IP")
	port       = flag.Int("port", ddp.DefaultPort, "target UDP port")
	leds       = flag.Int("leds", 20, "number of LEDs on the strip")
	color      = flag.String("color", "", "solid color to display ("+strings.Join(pixel.Names(), ", ")+")")
	pattern    = flag.String("pattern", "", "pattern to display (rainbow, cycle, gradient, chase)")
	delay      = flag.Float64("delay", 1.0, "seconds between pattern updates")
	iterations = flag.Int("iterations", 10, "iterations for chase and cycle")
	noPush     = flag.Bool("no-push", false, "stage frames without the push flag instead of displaying them immediately")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Validate everything before touching the network.
	if *leds < 0 {
		return fmt.Errorf("leds must be >= 0, got %d", *leds)
	}
	solid := pixel.Pixel{}
	if *color != "" {
		c, ok := pixel.Lookup(*color)
		if !ok {
			return fmt.Errorf("unknown color %q (choices: %s)", *color, strings.Join(pixel.Names(), ", "))
		}
		solid = c
	}
	switch *pattern {
	case "", "rainbow", "cycle", "gradient", "chase":
	default:
		return fmt.Errorf("unknown pattern %q (choices: rainbow, cycle, gradient, chase)", *pattern)
	}
	if *leds*3 > ddp.MaxDataLen {
		log.Warn().Int("leds", *leds).
			Msg("frame exceeds one DDP packet of pixel data, receivers may drop it")
	}

	client, err := ddp.Dial(*host, *port)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("closing socket")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	push := !*noPush
	target := fmt.Sprintf("%s:%d", *host, *port)

	switch {
	case *color != "":
		log.Info().Str("target", target).Int("leds", *leds).Str("color", *color).Msg("setting solid color")
		sendOnce(client, pixel.Solid(*leds, solid), push)
	case *pattern == "rainbow":
		log.Info().Str("target", target).Int("leds", *leds).Msg("displaying rainbow")
		sendOnce(client, pixel.Rainbow(*leds), push)
	case *pattern == "gradient":
		log.Info().Str("target", target).Int("leds", *leds).Msg("displaying red to blue gradient")
		sendOnce(client, pixel.Gradient(*leds, pixel.GradientStart, pixel.GradientEnd), push)
	case *pattern == "chase", *pattern == "cycle":
		return runPattern(ctx, client, push, target)
	default:
		log.Info().Str("target", target).Int("leds", *leds).Msg("setting solid blue (default)")
		blue, _ := pixel.Lookup("blue")
		sendOnce(client, pixel.Solid(*leds, blue), push)
	}
	return nil
}

func runPattern(ctx context.Context, client *ddp.Client, push bool, target string) error {
	r := runner.New(client, nil, runner.Config{
		LEDs:       *leds,
		Delay:      time.Duration(*delay * float64(time.Second)),
		Iterations: *iterations,
		Push:       push,
	})

	log.Info().Str("target", target).Int("leds", *leds).Int("iterations", *iterations).
		Str("pattern", *pattern).Msg("running pattern")

	var err error
	if *pattern == "chase" {
		err = r.Chase(ctx)
	} else {
		err = r.Cycle(ctx)
	}
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("stopped by user")
		return nil
	}
	return err
}

// sendOnce transmits a single frame. Transport errors are best-effort and
// only logged, matching the delivery guarantees of UDP itself.
func sendOnce(client *ddp.Client, f pixel.Frame, push bool) {
	n, err := client.Send(f.Bytes(), push)
	if err != nil {
		log.Error().Err(err).Msg("send failed")
		return
	}
	log.Debug().Int("bytes", n).Int("leds", len(f)).Msg("sent frame")
}
