// Profiling:
// go build ./profile/slots
// ./slots -mode mem -path .
// go tool pprof -http=":8000" -nodefraction=0.001 ./slots mem.pprof

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/edwinsyarief/table"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type position struct {
	X float64
	Y float64
}

type velocity struct {
	DX float64
	DY float64
}

type options struct {
	rounds    int
	iters     int
	slots     int
	mode      string
	path      string
	logLevel  string
	logFormat string
}

func main() {
	var opts options
	flag.IntVar(&opts.rounds, "rounds", 50, "number of freshly constructed tables")
	flag.IntVar(&opts.iters, "iters", 10000, "update passes per round")
	flag.IntVar(&opts.slots, "slots", 1000, "slots per table")
	flag.StringVar(&opts.mode, "mode", "allocs", "profile mode: cpu, mem, allocs")
	flag.StringVar(&opts.path, "path", ".", "directory for profile output")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level")
	flag.StringVar(&opts.logFormat, "log-format", "console", "log format: console, json")
	flag.Parse()

	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mode, err := profileMode(opts.mode)
	if err != nil {
		logger.Fatal("invalid profile mode", zap.String("mode", opts.mode), zap.Error(err))
	}

	logger.Info("profiling table workload",
		zap.String("mode", opts.mode),
		zap.Int("rounds", opts.rounds),
		zap.Int("iters", opts.iters),
		zap.Int("slots", opts.slots),
	)

	p := profile.Start(mode, profile.ProfilePath(opts.path), profile.NoShutdownHook, profile.Quiet)
	start := time.Now()
	checksum := run(opts.rounds, opts.iters, opts.slots)
	p.Stop()

	logger.Info("profiling finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("checksum", checksum),
		zap.String("path", opts.path),
	)
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", name)
}

func newLogger(levelText, format string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}

// run integrates velocities into positions and periodically zeroes slots the
// way an entity store recycles them. It returns a checksum so the work is not
// optimized away.
func run(rounds, iters, numSlots int) float64 {
	var sum float64
	for range rounds {
		pos := table.New[position](numSlots)
		vel := table.NewFunc(numSlots, func() velocity { return velocity{DX: 1, DY: 0.5} })
		c := pos.NewCursor()

		for it := range iters {
			c.Reset()
			for c.Next() {
				p := c.Get()
				v := vel.GetMut(c.Index())
				p.X += v.DX
				p.Y += v.DY
			}
			if numSlots > 0 {
				pos.Zero(it % numSlots)
			}
		}

		if i := pos.FindIndex(func(p *position) bool { return p.X > 0 }); i >= 0 {
			sum += pos.Get(i).X
		}
		for p := range pos.Values() {
			sum += p.Y
		}
	}
	return sum
}
