package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/vcusettings/config"
	"github.com/xaionaro-go/vcusettings/expertise"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/types"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [--config <channel.yaml>] [--codec avc|hevc --direction encode|decode ...]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to a YAML channel description")
	codec := pflag.String("codec", "avc", "the codec of the channel (if no --config)")
	direction := pflag.String("direction", "decode", "the direction of the channel (if no --config)")
	target := pflag.String("target", "hardware", "what the buffers are exchanged with (if no --config)")
	resolution := pflag.String("resolution", "", "WIDTHxHEIGHT (if no --config)")
	profile := pflag.String("profile", "", "the profile, e.g. 'high' or 'main10_high_tier' (if no --config)")
	level := pflag.String("level", "5.1", "the level, used with --profile")
	dump := pflag.Bool("dump", false, "also dump the driver settings record")
	pflag.Parse()
	if len(pflag.Args()) != 0 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	var (
		channel *config.Channel
		err     error
	)
	if *configPath != "" {
		channel, err = config.Load(*configPath)
	} else {
		channel, err = channelFromFlags(*codec, *direction, *target, *resolution, *profile, *level)
	}
	if err != nil {
		l.Fatal(err)
	}

	m, err := channel.Build(ctx)
	if err != nil {
		l.Fatal(err)
	}
	logger.Infof(ctx, "built %s", m)

	fmt.Printf("%s:\n", m)
	if err := printSettings(ctx, m); err != nil {
		l.Fatal(err)
	}
	if err := printExpertise(ctx, m, *dump); err != nil {
		l.Fatal(err)
	}

	if *dump {
		switch m := m.(type) {
		case mediatype.Decoder:
			spew.Dump(m.DriverSettings())
		case mediatype.Encoder:
			spew.Dump(m.DriverSettings())
		}
	}
}

func channelFromFlags(
	codec, direction, target string,
	resolution string,
	profile, level string,
) (*config.Channel, error) {
	c := &config.Channel{
		Codec:     codec,
		Direction: direction,
		Target:    target,
	}
	if resolution != "" {
		var res types.Resolution
		if err := res.Parse(resolution); err != nil {
			return nil, err
		}
		c.Settings.Resolution = &res
	}
	if profile != "" {
		c.Settings.ProfileLevel = &config.ProfileLevel{Profile: profile, Level: level}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// printSettings prints every field group the store serves.
func printSettings(ctx context.Context, m mediatype.Mediatype) error {
	for _, idx := range types.Indexes() {
		p, err := types.NewParam(idx)
		if err != nil {
			return err
		}
		err = m.Get(ctx, p)
		switch types.ErrorCodeOf(err) {
		case types.ErrorCodeNone:
		case types.ErrorCodeBadIndex:
			continue
		default:
			return fmt.Errorf("unable to get %s: %w", idx, err)
		}

		switch p := p.(type) {
		case *types.BufferSizes:
			fmt.Printf("\t%s: in:%s out:%s\n", idx,
				humanize.IBytes(uint64(p.Input)), humanize.IBytes(uint64(p.Output)))
		case *types.Clock:
			fmt.Printf("\t%s: %s (%.3f fps)\n", idx, p, p.FrameRate().Float64())
		default:
			fmt.Printf("\t%s: %s\n", idx, p)
		}
	}
	return nil
}

func printExpertise(ctx context.Context, m mediatype.Mediatype, dump bool) error {
	if _, ok := m.(mediatype.Encoder); !ok {
		return nil
	}

	var mimes types.Mimes
	if err := m.Get(ctx, &mimes); err != nil {
		return err
	}

	e, err := expertise.New(mimes.Output.Compression)
	if err != nil {
		return err
	}
	pl, err := e.GetProfileLevel(ctx, m)
	if err != nil {
		return err
	}
	fmt.Printf("\tOMX profile/level: 0x%X/0x%X\n", pl.Profile, pl.Level)

	if !dump {
		return nil
	}
	switch e := e.(type) {
	case expertise.AVC:
		params, err := e.GetExpertise(ctx, m)
		if err != nil {
			return err
		}
		spew.Dump(params)
	case expertise.HEVC:
		params, err := e.GetExpertise(ctx, m)
		if err != nil {
			return err
		}
		spew.Dump(params)
	}
	return nil
}
