package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	qngen "github.com/qngen/qngen"
	"github.com/qngen/qngen/casefmt"
	"github.com/qngen/qngen/config"
	"github.com/qngen/qngen/namegen"
	"github.com/qngen/qngen/namestore"
)

type CLI struct {
	Version    kong.VersionFlag          `help:"Print version."`
	ConfigFile string                    `help:"Config file path override." env:"QNGEN_CONFIG"`
	Verbose    bool                      `short:"v" help:"Enable debug logging."`
	Gen        GenCmd                    `cmd:"" default:"withargs" help:"Generate a random name."`
	Cats       CatsCmd                   `cmd:"" help:"List name categories."`
	Config     ConfigCmd                 `cmd:"" help:"Print effective configuration."`
	Init       InitCmd                   `cmd:"" help:"Create default config file."`
	Completion kongcompletion.Completion `cmd:"" help:"Print shell completion setup instructions."`
}

type GenCmd struct {
	Cat    []string `short:"c" help:"Name category (repeatable)." completion-predictor:"category"`
	Gender string   `short:"g" enum:"male,female,either," default:"" xor:"gender" help:"Print a male or female name."`
	Male   bool     `short:"m" xor:"gender" help:"Shorthand for --gender=male."`
	Female bool     `short:"f" xor:"gender" help:"Shorthand for --gender=female."`

	DoubleSurname bool `short:"d" xor:"modifier" help:"Create a double-barrelled surname."`
	MiddleName    bool `short:"M" xor:"modifier" help:"Generate a middle name."`
	MiddleInitial bool `short:"I" xor:"modifier" help:"Generate a middle initial."`

	SnakeCase    bool `short:"s" xor:"case" help:"Print name in snake_case format."`
	KebabCase    bool `short:"k" xor:"case" help:"Print name in kebab-case format."`
	CamelCase    bool `short:"C" xor:"case" help:"Print name in camelCase format."`
	CapCamelCase bool `xor:"case" help:"Print name in CapitalizedCamelCase format."`

	Count int  `short:"n" default:"1" help:"Number of names to generate."`
	Wheel bool `short:"w" help:"Spin a wheel to find a name (only use interactively)."`
}

func (cmd *GenCmd) Run(cfg *config.Config) error {
	store, err := namestore.LoadDirs(cfg.Data.ExtraDirs...)
	if err != nil {
		return err
	}
	slog.Debug("loaded name data", "categories", len(store.Categories()))

	req, err := cmd.request(cfg)
	if err != nil {
		return err
	}

	gen := namegen.New(store, nil)

	if cmd.Wheel {
		return spinWheel(gen, req)
	}

	for range cmd.Count {
		name, err := gen.Pick(req)
		if err != nil {
			return err
		}
		fmt.Println(name.Format(req.Style))
	}
	return nil
}

// request resolves flags over config defaults into a generation request.
func (cmd *GenCmd) request(cfg *config.Config) (namegen.Request, error) {
	genderID := cmd.Gender
	if cmd.Male {
		genderID = "male"
	}
	if cmd.Female {
		genderID = "female"
	}
	if genderID == "" {
		genderID = cfg.Generate.Gender
	}
	gender, err := namestore.ParseGender(genderID)
	if err != nil {
		return namegen.Request{}, err
	}

	mod, err := namegen.ModifierFromFlags(cmd.DoubleSurname, cmd.MiddleName, cmd.MiddleInitial)
	if err != nil {
		return namegen.Request{}, err
	}

	style, err := namegen.StyleFromFlags(cmd.SnakeCase, cmd.KebabCase, cmd.CamelCase, cmd.CapCamelCase)
	if err != nil {
		return namegen.Request{}, err
	}
	if !cmd.SnakeCase && !cmd.KebabCase && !cmd.CamelCase && !cmd.CapCamelCase {
		style, err = casefmt.ParseStyle(cfg.Generate.Case)
		if err != nil {
			return namegen.Request{}, err
		}
	}

	cats := cmd.Cat
	if len(cats) == 0 {
		cats = cfg.Generate.Categories
	}

	return namegen.Request{
		Categories: cats,
		Gender:     gender,
		Modifier:   mod,
		Style:      style,
	}, nil
}

type CatsCmd struct{}

func (cmd *CatsCmd) Run(cfg *config.Config) error {
	store, err := namestore.LoadDirs(cfg.Data.ExtraDirs...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tGROUPS\tFIRST\tSURNAMES")
	for _, c := range store.Categories() {
		groups := "-"
		if len(c.Groups) > 0 {
			groups = strings.Join(c.Groups, ",")
		}
		first := len(c.Male) + len(c.Female) + len(c.Unisex)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", c.ID, c.Title, groups, first, len(c.Surnames))
	}
	return w.Flush()
}

type ConfigCmd struct{}

func (cmd *ConfigCmd) Run(cfg *config.Config) error {
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}

type InitCmd struct{}

func (cmd *InitCmd) Run(_ *config.Config) error {
	path := config.DefaultPath()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config.Default()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("created %s\n", path)
	return nil
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("qngen"),
		kong.Description("Generate a random Québécois name."),
		kong.UsageOnError(),
		kong.Vars{"version": qngen.Version()},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	kongcompletion.Register(parser, kongcompletion.WithPredictor("category", categoryPredictor{}))

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.Printf("%s", err)
		parser.Exit(1)
		return
	}

	setupLogging(cli.Verbose)

	cfg, err := loadConfig(cli.ConfigFile)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(cfg))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}
