package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/karrick/tparse"
	"github.com/scylladb/termtables"
	"github.com/tkuchiki/go-timezone"

	"github.com/araddon/datefix"
)

var usage = `Normalize loosely formatted dates to RFC 3339 timestamps.

Usage:
    datefix [--tz=<zone>] [--now=<time>] <datestr>...
    datefix [--tz=<zone>] [--now=<time>] --file=<path>

Options:
    -h --help        Print help
    -z --tz=<zone>   Zone anchoring text that carries no offset of its
                     own, an IANA name or an abbreviation [default: Local]
    -n --now=<time>  Reference instant for year-less and time-only text,
                     RFC 3339 or relative such as now-12h [default: now]
    -f --file=<path> Read one date per line from <path>, "-" for stdin
`

type cliOpts struct {
	Dates []string `docopt:"<datestr>"`
	File  string   `docopt:"--file"`
	Zone  string   `docopt:"--tz"`
	Now   string   `docopt:"--now"`
}

func main() {
	parsed, err := docopt.ParseArgs(usage, nil, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var opts cliOpts
	if err := parsed.Bind(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	clock, err := buildClock(opts.Zone, opts.Now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.File != "" {
		os.Exit(runFile(opts.File, clock))
	}
	os.Exit(runTable(opts.Dates, clock))
}

// buildClock anchors parsing at the --now instant read in the --tz zone.
func buildClock(zone, now string) (datefix.Clock, error) {
	loc := time.Local
	if zone != "Local" {
		var err error
		loc, err = time.LoadLocation(zone)
		if err != nil {
			// not an IANA name, try it as an abbreviation
			infos, abbrErr := timezone.New().GetTzAbbreviationInfo(zone)
			if abbrErr != nil {
				return datefix.Clock{}, fmt.Errorf("unusable --tz %q: %v", zone, abbrErr)
			}
			loc = time.FixedZone(zone, infos[0].Offset())
		}
	}
	at, err := tparse.ParseNow(time.RFC3339, now)
	if err != nil {
		return datefix.Clock{}, fmt.Errorf("unusable --now %q: %v", now, err)
	}
	return datefix.ClockAt(at.In(loc)), nil
}

func runTable(dates []string, clock datefix.Clock) int {
	table := termtables.CreateTable()
	table.AddHeaders("Input", "Strategy", "RFC 3339")

	code := 0
	for _, datestr := range dates {
		ts, err := datefix.Parse(datestr, clock)
		if err != nil {
			table.AddRow(datestr, "", err.Error())
			code = 1
			continue
		}
		name, _ := datefix.Strategy(datestr, clock)
		table.AddRow(datestr, name, ts.String())
	}
	fmt.Println(table.Render())
	return code
}

func runFile(path string, clock datefix.Clock) int {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	code := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		datestr := strings.TrimSpace(scanner.Text())
		if datestr == "" {
			continue
		}
		ts, err := datefix.Parse(datestr, clock)
		if err != nil {
			fmt.Printf("%-35s: %v\n", datestr, err)
			code = 1
			continue
		}
		fmt.Printf("%-35s: %s\n", datestr, ts)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return code
}
