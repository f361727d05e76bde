// This file is part of mkc64tap.
//
// mkc64tap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mkc64tap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mkc64tap.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/reidrac/mkc64tap/kernal"
	"github.com/reidrac/mkc64tap/logger"
	"github.com/reidrac/mkc64tap/modalflag"
	"github.com/reidrac/mkc64tap/prg"
	"github.com/reidrac/mkc64tap/tape"
	"github.com/reidrac/mkc64tap/version"
	"github.com/reidrac/mkc64tap/wavexport"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("TAP", "WAV", "VERSION")
	md.AdditionalHelp("mkc64tap generates tape images for the C64 from PRG files")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "TAP":
		err = tapMode(md)
	case "WAV":
		err = wavMode(md)
	case "VERSION":
		ver, rev := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if rev != "" {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

// common flags for the TAP and WAV modes. must be called after NewMode() and
// before Parse().
type encodeFlags struct {
	output  *string
	name    *string
	profile *string
	echoLog *bool
}

func addEncodeFlags(md *modalflag.Modes, defOutput string) encodeFlags {
	return encodeFlags{
		output:  md.AddString("o", defOutput, "filename for the output file"),
		name:    md.AddString("name", "", "on-tape name for the program(s) (default: from the PRG filename)"),
		profile: md.AddString("profile", "", "TOML timing profile (pilot/gap lengths)"),
		echoLog: md.AddBool("log", false, "echo log entries to stderr"),
	}
}

func (fl encodeFlags) timing() (kernal.Timing, error) {
	if *fl.profile != "" {
		return kernal.LoadTiming(*fl.profile)
	}
	return kernal.DefaultTiming(), nil
}

// encodeTape runs every PRG file through the loader encoder, ending the tape
// with an end-of-tape block. The destination decides what the pulses become:
// container bytes or audio samples.
func encodeTape(pw kernal.PulseWriter, files []string, name string, timing kernal.Timing) error {
	enc := kernal.NewEncoder(pw, timing)

	for _, fn := range files {
		p, err := prg.Load(fn, name)
		if err != nil {
			return err
		}
		if err := enc.EncodeProgram(p); err != nil {
			return err
		}
	}

	return enc.EncodeEndOfTape()
}

func tapMode(md *modalflag.Modes) error {
	md.NewMode()
	fl := addEncodeFlags(md, "output.tap")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("no PRG files specified")
	}

	if *fl.echoLog {
		logger.SetEcho(os.Stderr)
	}

	timing, err := fl.timing()
	if err != nil {
		return err
	}

	w := tape.NewWriter()
	if err := encodeTape(w, md.RemainingArgs(), *fl.name, timing); err != nil {
		return err
	}

	// the container is committed to disk only after the whole encode has
	// succeeded. a failure part way through leaves no truncated file behind
	buf := &bytes.Buffer{}
	if err := w.Finalize(buf); err != nil {
		return err
	}
	if err := os.WriteFile(*fl.output, buf.Bytes(), 0644); err != nil {
		return err
	}

	logger.Logf("tap", "%s: %d bytes of pulse data", *fl.output, w.Size())

	return nil
}

func wavMode(md *modalflag.Modes) error {
	md.NewMode()
	fl := addEncodeFlags(md, "output.wav")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("no PRG files specified")
	}

	if *fl.echoLog {
		logger.SetEcho(os.Stderr)
	}

	timing, err := fl.timing()
	if err != nil {
		return err
	}

	w := wavexport.NewWriter(*fl.output)
	if err := encodeTape(w, md.RemainingArgs(), *fl.name, timing); err != nil {
		return err
	}

	return w.Finalize()
}
