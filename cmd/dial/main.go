// Command dial watches a configured session calendar and prints the live
// session-clock state once per second: which session is open, or which
// opens next, with a countdown. With -dump it renders one frame of the
// dial through the full pipeline and prints the canvas operations instead,
// which is useful for eyeballing geometry changes without a display.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-dial/dial/cmd/dial/internal/config"
	"github.com/go-dial/dial/pkg/animation"
	"github.com/go-dial/dial/pkg/dial"
	"github.com/go-dial/dial/pkg/dialtest"
	"github.com/go-dial/dial/pkg/errors"
	"github.com/go-dial/dial/pkg/rendering"
	"github.com/go-dial/dial/pkg/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dial: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "dial.yaml", "path to the session calendar")
	dump := flag.Bool("dump", false, "render one frame and print its canvas operations")
	once := flag.Bool("once", false, "print the current state and exit")
	verbose := flag.Bool("v", false, "log recoverable engine errors")
	flag.Parse()

	errors.SetHandler(&errors.LogHandler{Verbose: *verbose})

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	res, err := cfg.Resolve()
	if err != nil {
		return err
	}

	if *dump {
		return dumpFrame(res)
	}
	return watch(res, *once)
}

// watch prints one state line per second until interrupted.
func watch(res *config.Resolved, once bool) error {
	resolver := session.NewResolver(res.Location)
	resolver.TieBreak = res.TieBreak

	printState(resolver, res.Sessions)
	if once {
		return nil
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-interrupt:
			return nil
		case <-ticker.C:
			printState(resolver, res.Sessions)
		}
	}
}

func printState(resolver *session.Resolver, sessions []session.Session) {
	st := resolver.Resolve(sessions, time.Now())
	switch {
	case st.Active != nil:
		fmt.Printf("%s closes in %s\n", st.Active.Name, session.FormatCountdown(st.SecondsToEnd))
	case st.Next != nil:
		fmt.Printf("%s opens in %s\n", st.Next.Name, session.FormatCountdown(st.SecondsToStart))
	default:
		fmt.Println("no sessions configured")
	}
}

// captureSurface adapts a capture canvas to the renderer's surface.
type captureSurface struct {
	canvas *dialtest.CaptureCanvas
	size   rendering.Size
}

func (s *captureSurface) Canvas() (rendering.Canvas, error) { return s.canvas, nil }
func (s *captureSurface) Size() rendering.Size              { return s.size }
func (s *captureSurface) DevicePixelRatio() float64         { return 1 }

// dumpFrame renders the dial until its entrance animations settle, then
// prints the final frame's operations.
func dumpFrame(res *config.Resolved) error {
	size := rendering.Size{Width: res.Size, Height: res.Size}
	canvas := dialtest.NewCaptureCanvas(size)
	surface := &captureSurface{canvas: canvas, size: size}
	scheduler := animation.NewScheduler(nil)

	renderer, err := dial.NewRenderer(surface, scheduler, dial.Config{
		Style:     res.Style,
		HandColor: res.HandColor,
		Location:  res.Location,
		TieBreak:  res.TieBreak,
	})
	if err != nil {
		return err
	}
	defer renderer.Unmount()
	renderer.SetSessions(res.Sessions)
	renderer.SetEvents(res.Markers)

	loop := dial.NewFrameLoop(scheduler, 0, func(now time.Time) {
		renderer.Frame(now)
	})
	// Warm-up frames let entrance fades and the first hand snap finish.
	for i := 0; i < 10; i++ {
		loop.Tick()
		time.Sleep(100 * time.Millisecond)
	}
	canvas.Reset()
	loop.Tick()

	fmt.Print(canvas.String())
	return nil
}
