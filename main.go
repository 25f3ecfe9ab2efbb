package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/color-game/paletton/config"
	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/palette"
	"github.com/color-game/paletton/paletton"
	"github.com/color-game/paletton/ryb"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "paletton: %v\n", err)
		os.Exit(1)
	}
}

// input holds the flags that select the base color.
type input struct {
	hex    string
	rgb    string
	hsv    string
	random bool
	seed   int64
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var in input

	root := &cobra.Command{
		Use:           "paletton",
		Short:         "Generate color schemes from a base color",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPaletton(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			base, err := in.color()
			if err != nil {
				return err
			}
			format, err := palette.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			pal, err := palette.Generate(p, base, cfg.Scheme, cfg.Preset)
			if err != nil {
				return err
			}
			return pal.Render(cmd.OutOrStdout(), format, cfg.Decimals)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&in.hex, "hex", "c", "", "base color as #RGB or #RRGGBB")
	pf.StringVar(&in.rgb, "rgb", "", "base color as r,g,b in [0,1]")
	pf.StringVar(&in.hsv, "hsv", "", "base color as h,s,v (hue in degrees)")
	pf.BoolVar(&in.random, "random", false, "use a random base color")
	pf.Int64Var(&in.seed, "seed", 0, "seed for --random (0 uses the clock)")
	pf.StringVar(&cfg.Wheel, "wheel", cfg.Wheel, "color wheel: paletton, ryb, ryb-cubic or a YAML file")
	pf.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "YAML file with extra presets")
	pf.StringVar(&cfg.Policy, "policy", cfg.Policy, "preset ratio policy: absolute or multiplier")
	pf.StringVar(&cfg.Shader, "shader", cfg.Shader, "variation shader: blend or hsv")
	pf.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log diagnostics to stderr")

	f := root.Flags()
	f.StringVarP(&cfg.Scheme, "scheme", "s", cfg.Scheme, "scheme: "+strings.Join(palette.Schemes(), ", "))
	f.StringVarP(&cfg.Preset, "preset", "p", cfg.Preset, "preset name")
	f.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: hex, hsv, full, json or swatch")
	f.IntVarP(&cfg.Decimals, "decimals", "d", cfg.Decimals, "round numeric output to this many decimals (-1 disables)")

	root.AddCommand(newWheelCmd(&cfg), newHueCmd(&cfg, &in), newPresetsCmd(&cfg))
	return root
}

func newWheelCmd(cfg *config.Config) *cobra.Command {
	var anchorsOnly bool

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Print the expanded color wheel, one degree per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPaletton(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			w := p.Expanded()
			if anchorsOnly {
				w = p.Anchors()
			}
			out := cmd.OutOrStdout()
			for _, d := range w.Degrees() {
				fmt.Fprintf(out, "%3d %s\n", d, models.FromRGB8(w[d]).Hex())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&anchorsOnly, "anchors", false, "print only the anchor samples")
	return cmd
}

func newHueCmd(cfg *config.Config, in *input) *cobra.Command {
	return &cobra.Command{
		Use:   "hue",
		Short: "Print where the base color sits on the color wheel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPaletton(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			base, err := in.color()
			if err != nil {
				return err
			}

			hue := int(math.RoundToEven(base.HSV().Hue)) % 360
			degree := p.WheelHue(base)
			fmt.Fprintf(cmd.OutOrStdout(), "%s hue %d wheel %d %s\n",
				base.Hex(), hue, degree, models.FromRGB8(p.HueToRGB(float64(degree))).Hex())
			return nil
		},
	}
}

func newPresetsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPaletton(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, name := range p.PresetNames() {
				preset, err := p.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", name, len(preset))
			}
			return nil
		},
	}
}

func (in input) color() (models.Color, error) {
	set := 0
	for _, given := range []bool{in.hex != "", in.rgb != "", in.hsv != "", in.random} {
		if given {
			set++
		}
	}
	if set > 1 {
		return models.Color{}, fmt.Errorf("%w: use only one of --hex, --rgb, --hsv, --random", models.ErrInvalidFormat)
	}

	switch {
	case in.hex != "":
		return models.FromHex(in.hex)
	case in.rgb != "":
		rgb, err := models.ParseRGB(in.rgb)
		if err != nil {
			return models.Color{}, err
		}
		return models.FromRGB(rgb), nil
	case in.hsv != "":
		hsv, err := models.ParseHSV(in.hsv)
		if err != nil {
			return models.Color{}, err
		}
		return models.FromHSV(hsv), nil
	case in.random:
		seed := in.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return models.RandomColor(rand.New(rand.NewSource(seed))), nil
	}
	return models.NewColor(), nil
}

func buildPaletton(cfg config.Config, logOut io.Writer) (*paletton.Paletton, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	opts := []paletton.Option{paletton.WithLogger(logger)}

	switch cfg.Wheel {
	case "", "paletton":
	case "ryb":
		opts = append(opts, paletton.WithWheel(paletton.RYBWheel(ryb.Physical{}, 15)))
	case "ryb-cubic":
		opts = append(opts, paletton.WithWheel(paletton.RYBWheel(ryb.Cubic{}, 15)))
	default:
		w, err := config.LoadWheel(cfg.Wheel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paletton.WithWheel(w))
	}

	if cfg.PresetsFile != "" {
		presets, err := config.LoadPresets(cfg.PresetsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paletton.WithPresets(presets))
	}

	policy, err := paletton.PolicyByName(cfg.Policy)
	if err != nil {
		return nil, err
	}
	shader, err := paletton.ShaderByName(cfg.Shader)
	if err != nil {
		return nil, err
	}
	opts = append(opts, paletton.WithPolicy(policy), paletton.WithShader(shader))

	logger.Debug("building color wheel", "wheel", cfg.Wheel, "policy", cfg.Policy, "shader", cfg.Shader)
	return paletton.New(opts...)
}
