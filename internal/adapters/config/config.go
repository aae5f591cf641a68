package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Badsnus/fancyqr/internal/domain/entity"
	"github.com/Badsnus/fancyqr/pkg/logger"
)

const envPrefix = "FANCYQR"

type Config struct {
	Logger   logger.Config
	Options  entity.Options
	FontDirs []string
	Scratch  string
}

// flag name -> config key
var flagKeys = map[string]string{
	"debug":           "settings.debug",
	"data":            "qr.data",
	"out":             "qr.outfile",
	"preset":          "qr.preset",
	"logo":            "qr.logo",
	"sub-logo":        "qr.sub-logo",
	"front-image":     "qr.front-image",
	"bar-style":       "qr.bar-style",
	"front-color":     "qr.front-color",
	"back-color":      "qr.back-color",
	"outer-eye-style": "qr.outer-eye-style",
	"outer-eye-color": "qr.outer-eye-color",
	"inner-eye-style": "qr.inner-eye-style",
	"inner-eye-color": "qr.inner-eye-color",
	"box-size":        "qr.box-size",
	"radius-ratio":    "qr.radius-ratio",
	"engine":          "qr.engine",
	"text":            "caption.text",
	"text-color":      "caption.color",
	"text-size":       "caption.size",
	"font":            "caption.font",
	"overlay-scale":   "overlay.scale",
	"font-dir":        "fonts.dirs",
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("fancyqr", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (default ./config.yaml)")
	fs.Bool("debug", false, "enable debug logging")

	fs.StringP("data", "d", "", "payload to encode")
	fs.StringP("out", "o", "", "output image path")
	fs.String("preset", "", "base style: "+strings.Join(entity.Presets(), ", "))
	fs.String("logo", "", "image embedded in the centre of the code")
	fs.String("sub-logo", "", "icon placed over the finished image")
	fs.String("front-image", "", "image sampled as the fill of dark modules")
	fs.String("bar-style", "", "module shape")
	fs.String("front-color", "", "dark module color, r,g,b or #rrggbb")
	fs.String("back-color", "", "background color")
	fs.String("outer-eye-style", "", "module shape of the marker rings")
	fs.String("outer-eye-color", "", "color of the marker rings")
	fs.String("inner-eye-style", "", "module shape of the marker centres")
	fs.String("inner-eye-color", "", "color of the marker centres")
	fs.IntP("box-size", "b", entity.DefaultBoxSize, "pixels per module")
	fs.Float64("radius-ratio", entity.DefaultRadiusRatio, "logo corner radius relative to its side")
	fs.String("engine", "", "renderer: skip2 or standard")

	fs.StringP("text", "t", "", "caption text")
	fs.String("text-color", "", "caption color")
	fs.Int("text-size", entity.DefaultCaptionSize, "caption size in pixels")
	fs.String("font", "", "caption font name or path")
	fs.Float64("overlay-scale", entity.DefaultOverlayScale, "icon side relative to the image side")
	fs.StringSlice("font-dir", nil, "extra directories searched for fonts")
	return fs
}

func initConfig(args []string) (*viper.Viper, error) {
	v := viper.New()

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("settings.timezone", "UTC")
	v.SetDefault("settings.logs-dir", "logs")
	v.SetDefault("qr.outfile", "qrcode.png")

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load builds the configuration from command-line args, FANCYQR_* env vars
// and the optional config file, in that order of precedence.
func Load(args []string) (*Config, error) {
	v, err := initConfig(args)
	if err != nil {
		return nil, err
	}

	opts, err := options(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Logger: logger.Config{
			Debug:     v.GetBool("settings.debug"),
			TimeZone:  v.GetString("settings.timezone"),
			LogToFile: v.GetBool("settings.log-to-file"),
			LogsDir:   v.GetString("settings.logs-dir"),
		},
		Options:  opts,
		FontDirs: v.GetStringSlice("fonts.dirs"),
		Scratch:  v.GetString("scratch.root"),
	}, nil
}

// Get loads the configuration from the process arguments and initialises
// the global logger.
func Get() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		panic(err)
	}

	if err = logger.Init(cfg.Logger); err != nil {
		panic(err)
	}
	return cfg
}

// options starts from the selected preset and overrides only what was set.
func options(v *viper.Viper) (entity.Options, error) {
	o, err := entity.Preset(v.GetString("qr.preset"), v.GetString("qr.data"), v.GetString("qr.outfile"))
	if err != nil {
		return o, err
	}

	setString(v, "qr.logo", &o.Logo)
	setString(v, "qr.sub-logo", &o.Overlay.Icon)
	setString(v, "qr.front-image", &o.Style.BackgroundImage)
	setString(v, "qr.engine", &o.Engine)
	setString(v, "caption.text", &o.Caption.Text)
	setString(v, "caption.font", &o.Caption.Font)
	if v.IsSet("qr.box-size") {
		o.BoxSize = v.GetInt("qr.box-size")
	}
	if v.IsSet("qr.radius-ratio") {
		o.RadiusRatio = v.GetFloat64("qr.radius-ratio")
	}
	if v.IsSet("caption.size") {
		o.Caption.Size = v.GetInt("caption.size")
	}
	if v.IsSet("overlay.scale") {
		o.Overlay.Scale = v.GetFloat64("overlay.scale")
	}
	setFloat(v, "overlay.x", &o.Overlay.Position.X)
	setFloat(v, "overlay.y", &o.Overlay.Position.Y)
	setFloat(v, "caption.x", &o.Caption.Position.X)
	setFloat(v, "caption.y", &o.Caption.Position.Y)

	if err = setShape(v, "qr.bar-style", &o.Style.Shape); err != nil {
		return o, err
	}
	if err = setShape(v, "qr.outer-eye-style", &o.OuterEye.Shape); err != nil {
		return o, err
	}
	if err = setShape(v, "qr.inner-eye-style", &o.InnerEye.Shape); err != nil {
		return o, err
	}

	if err = setColor(v, "qr.front-color", &o.Style.Foreground); err != nil {
		return o, err
	}
	if err = setColor(v, "qr.back-color", &o.Style.Background); err != nil {
		return o, err
	}
	if err = setColor(v, "caption.color", &o.Caption.Color); err != nil {
		return o, err
	}
	if o.OuterEye.Color, err = eyeColor(v, "qr.outer-eye-color", o.OuterEye.Color); err != nil {
		return o, err
	}
	if o.InnerEye.Color, err = eyeColor(v, "qr.inner-eye-color", o.InnerEye.Color); err != nil {
		return o, err
	}
	return o, nil
}

func setString(v *viper.Viper, key string, dst *string) {
	if s := v.GetString(key); s != "" {
		*dst = s
	}
}

func setFloat(v *viper.Viper, key string, dst *float64) {
	if v.IsSet(key) {
		*dst = v.GetFloat64(key)
	}
}

func setShape(v *viper.Viper, key string, dst *entity.ModuleShape) error {
	s := v.GetString(key)
	if s == "" {
		return nil
	}
	shape, err := entity.ParseModuleShape(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = shape
	return nil
}

func setColor(v *viper.Viper, key string, dst *entity.RGB) error {
	s := v.GetString(key)
	if s == "" {
		return nil
	}
	c, err := entity.ParseRGB(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = c
	return nil
}

// eyeColor keeps prev unless key is set; "none" clears the override.
func eyeColor(v *viper.Viper, key string, prev *entity.RGB) (*entity.RGB, error) {
	s := v.GetString(key)
	switch {
	case s == "":
		return prev, nil
	case strings.EqualFold(s, "none"):
		return nil, nil
	}
	c, err := entity.ParseRGB(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &c, nil
}
