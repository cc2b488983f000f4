package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	rpnresolver "github.com/davassi/RpnResolver"
)

const version = "1.1.0"

// config is the YAML preset file. Variable values are themselves
// expressions, so "tau: 2 * PI" works.
type config struct {
	Variables map[string]string `yaml:"variables"`
}

type preset struct {
	name  string
	value rpnresolver.Number
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	var (
		quiet, verbose bool
		cfgname, loc   string
		presets        []preset
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		p, err := definePreset(strings.TrimSpace(d[0]), strings.TrimSpace(d[1]))
		if err != nil {
			return err
		}
		presets = append(presets, p)
		return nil
	}
	flag.BoolVar(&quiet, "q", false, "suppress the startup banner")
	flag.BoolVar(&verbose, "v", false, "enable debug traces")
	flag.StringVar(&cfgname, "c", "", "YAML file of variable presets")
	flag.StringVar(&loc, "locale", "", "BCP 47 tag for result formatting (default plain)")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.Parse()
	if verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		rpnresolver.SetLogger(log.Logger)
	}

	var printer *message.Printer
	if loc != "" {
		tag, err := language.Parse(loc)
		if err != nil {
			log.Fatal().Err(err).Str("locale", loc).Msg("unknown locale")
		}
		printer = message.NewPrinter(tag)
	}

	if cfgname != "" {
		fromfile, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfgname).Msg("cannot load presets")
		}
		presets = append(fromfile, presets...)
	}

	// One environment for the whole session, so assignments persist
	// across lines.
	env := rpnresolver.NewEnv()
	for _, p := range presets {
		env.Set(p.name, p.value)
	}
	eval := func(line string) {
		r, err := rpnresolver.ParseInEnv(line, env)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		res, err := r.Resolve()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Println(display(printer, res))
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg)
		}
		return
	}

	if !quiet {
		fmt.Printf("RpnResolver v.%s - an RPN expression resolver.\n", version)
		fmt.Println(`Type an expression, or "quit" to exit.`)
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			break
		}
		eval(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}

// definePreset evaluates a preset's value as an expression of its own.
func definePreset(name, value string) (preset, error) {
	v, err := rpnresolver.ResolveString(value)
	if err != nil {
		return preset{}, fmt.Errorf("setting %s: %w", name, err)
	}
	return preset{name: name, value: v}, nil
}

func loadConfig(name string) ([]preset, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var c config
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return nil, err
	}
	presets := make([]preset, 0, len(c.Variables))
	for n, v := range c.Variables {
		p, err := definePreset(n, v)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// display formats a result, localized when a printer is set. Integers too
// large for int64 always print exactly, without grouping.
func display(p *message.Printer, n rpnresolver.Number) string {
	if p == nil {
		return n.String()
	}
	if n.IsNatural() {
		v, err := n.Int64()
		if err != nil {
			return n.String()
		}
		return p.Sprintf("%v", number.Decimal(v))
	}
	return p.Sprintf("%v", number.Decimal(n.Float64()))
}
