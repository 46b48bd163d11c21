// Command curlsh is an interactive shell driving a page curl view with a
// manual clock. Pointer coordinates are normalized: y spans -1 to 1 bottom to
// top and x is scaled by the aspect ratio.
//
//	curlsh: size 1080 1920
//	curlsh: down 0 -0.35
//	curlsh: move 0.05 0
//	curlsh: up 0.05 0.5
//	curlsh: run
//	curlsh: save Top Back top.webp
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"dasa.cc/curl/anim"
	"dasa.cc/curl/curl"
)

var (
	flagDur    = flag.Duration("dur", anim.DefaultDuration, "length of release transitions.")
	flagRadius = flag.Float64("radius", curl.DefaultRadius, "fold radius in normalized units.")
	flagWidth  = flag.Int("w", 1080, "surface width in pixels.")
	flagHeight = flag.Int("h", 1920, "surface height in pixels.")
	flagPPT    = flag.Float64("ppt", 160.0/72, "pixels per point; 160/72 is a density of 1.")
)

func main() {
	flag.Parse()

	tmp, err := os.CreateTemp("", "curlsh")
	if err != nil {
		panic(err)
	}
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "curlsh: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())

	sh := newShell(rl.Stdout(), float32(*flagRadius), *flagDur)
	if err := sh.exec("size", []string{itoa(*flagWidth), itoa(*flagHeight), ftoa(*flagPPT)}); err != nil {
		log.Fatal(err)
	}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			break
		}
		if err := sh.exec(args[0], args[1:]); err != nil {
			log.Printf("%s: %v", args[0], err)
		}
	}
}
