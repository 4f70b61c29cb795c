// This file is part of Mockingboard.
//
// Mockingboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mockingboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mockingboard.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mockingboard/audio/otoplayer"
	"github.com/jetsetilly/mockingboard/audio/sdlaudio"
	"github.com/jetsetilly/mockingboard/demo"
	"github.com/jetsetilly/mockingboard/dump"
	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/hardware/mockingboard"
	"github.com/jetsetilly/mockingboard/hardware/preferences"
	"github.com/jetsetilly/mockingboard/logger"
	"github.com/jetsetilly/mockingboard/modalflag"
	"github.com/jetsetilly/mockingboard/performance"
	"github.com/jetsetilly/mockingboard/prefs"
	"github.com/jetsetilly/mockingboard/statsview"
	"github.com/jetsetilly/mockingboard/version"
	"github.com/jetsetilly/mockingboard/wavwriter"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the play mode stops the tune
	// gracefully so that the wav file can be written.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Stdout, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, output io.Writer, args []string) {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "DUMP", "SNAPSHOT", "PERFORMANCE")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	// set debugging log echo
	if *log {
		// colour is only used when echoing to a terminal
		if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.SetEcho(logger.NewColorizer(output), false)
		} else {
			logger.SetEcho(output, false)
		}
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		err = statsview.Launch(output, "")
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
		}
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "DUMP":
		err = dumpCard(md)

	case "SNAPSHOT":
		err = snapshot(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// cardFlags are the flags shared by every mode that creates a card.
type cardFlags struct {
	card       *string
	phasorMode *string
	prefs      *string
	pal        *bool
}

func addCardFlags(md *modalflag.Modes) cardFlags {
	return cardFlags{
		card:       md.AddString("card", "", "card variant: MOCKINGBOARD, PHASOR (default from preferences)"),
		phasorMode: md.AddString("phasormode", "phasor", "phasor mode: MB, PHASOR, ECHO"),
		prefs:      md.AddString("prefs", "", "preferences for this session. eg. \"mockingboard.volume::0.5\""),
		pal:        md.AddBool("pal", false, "emulate a PAL Apple II"),
	}
}

// config returns the demo configuration described by the card flags.
func (f cardFlags) config() (demo.Config, error) {
	var cfg demo.Config

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	var err error
	cfg.Prefs, err = preferences.NewPreferences()
	if err != nil {
		return cfg, err
	}

	variant := *f.card
	if variant == "" {
		variant = cfg.Prefs.VariantName()
	}
	cfg.Variant, err = mockingboard.ParseVariant(variant)
	if err != nil {
		return cfg, err
	}

	cfg.PhasorMode, err = mockingboard.ParsePhasorMode(*f.phasorMode)
	if err != nil {
		return cfg, err
	}

	cfg.PAL = *f.pal

	return cfg, nil
}

func noArguments(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	return nil
}

func play(md *modalflag.Modes, sync *mainSync) (rerr error) {
	md.NewMode()

	output := md.AddEnum("output", "oto", []string{"oto", "sdl", "wav"}, "audio output")
	wavFile := md.AddString("wav", "mockingboard.wav", "file written by the wav output")
	seconds := md.AddFloat64("seconds", 0.0, "number of seconds to play. zero plays the entire tune")
	flags := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := flags.config()
	if err != nil {
		return err
	}

	// the wav output consumes audio as quickly as it is produced. the audio
	// devices consume it in real time
	if *output == "wav" {
		cfg.Drain = true
	} else {
		cfg.Realtime = true
	}

	d, err := demo.NewDemo(cfg)
	if err != nil {
		return err
	}

	switch *output {
	case "oto":
		pl, err := otoplayer.NewPlayer(d.Sink(), clocks.SampleRate)
		if err != nil {
			return err
		}
		defer pl.Close()

	case "sdl":
		aud, err := sdlaudio.NewAudio(d.Sink(), clocks.SampleRate)
		if err != nil {
			return err
		}
		defer aud.Close()

	case "wav":
		aw, err := wavwriter.New(*wavFile, clocks.SampleRate)
		if err != nil {
			return err
		}
		d.Card().SetRecorder(aw)
		defer func() {
			if err := aw.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	// turn off fallback ctrl-c handling. ctrl-c stops the tune and the
	// output is closed normally
	sync.state <- stateRequest{req: reqNoIntSig}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(md.Output, "! playing on %s\n", d.Card().Variant())

	if *seconds > 0.0 {
		err = d.Run(ctx, d.Seconds(*seconds))
	} else {
		for err == nil && !d.Finished() {
			err = d.Run(ctx, d.Seconds(1.0))
		}
	}

	if errors.Is(err, context.Canceled) {
		err = nil
	}

	return err
}

// run the player for the number of cycles. the snapshot file is loaded into
// the card of the started player
func runDemo(cfg demo.Config, cycles uint64, snapshotFile string) (*demo.Demo, error) {
	cfg.FullSpeed = true
	d, err := demo.NewDemo(cfg)
	if err != nil {
		return nil, err
	}

	if snapshotFile != "" {
		d.Start()

		f, err := os.Open(snapshotFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		err = d.Card().LoadSnapshot(f, mockingboard.Slot4)
		if err != nil {
			return nil, err
		}
	}

	err = d.Run(context.Background(), cycles)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func dumpCard(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 100000, "number of cycles to run before dumping")
	memvizFile := md.AddString("memviz", "", "write a graphviz map of the card to file")
	flags := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := flags.config()
	if err != nil {
		return err
	}

	d, err := runDemo(cfg, *cycles, "")
	if err != nil {
		return err
	}

	err = dump.Dump(md.Output, d.Card())
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, d.Card())
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "! card map written to %s\n", *memvizFile)
	}

	return nil
}

func snapshot(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 100000, "number of cycles to run before taking the snapshot")
	in := md.AddString("in", "", "snapshot to load before running")
	out := md.AddString("out", "", "file to write the snapshot to (default stdout)")
	flags := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	cfg, err := flags.config()
	if err != nil {
		return err
	}

	d, err := runDemo(cfg, *cycles, *in)
	if err != nil {
		return err
	}

	if *out == "" {
		return d.Card().SaveSnapshot(md.Output, mockingboard.Slot4)
	}

	var s strings.Builder
	err = d.Card().SaveSnapshot(&s, mockingboard.Slot4)
	if err != nil {
		return err
	}

	return os.WriteFile(*out, []byte(s.String()), 0o644)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration (there is a short lead time)")
	profile := md.AddEnum("profile", "none", performance.ProfileOptions, "profiling output to generate")
	flags := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cfg, err := flags.config()
	if err != nil {
		return err
	}

	// audio is produced but not played
	cfg.Drain = true

	d, err := demo.NewDemo(cfg)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, d, *duration)
}
