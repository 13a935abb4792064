// Package cli wires the surface driver into a small command line
// tool: run the surface against a connected device, scroll text, or
// play a short lighting demo.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/padworks/lppro/internal/config"
	"github.com/padworks/lppro/internal/pad"
	"github.com/padworks/lppro/internal/palette"
	"github.com/padworks/lppro/internal/ports"
	"github.com/padworks/lppro/internal/surface"
)

var rootCmd = &cobra.Command{
	Use:   "lppro",
	Short: "lppro drives a Novation Launchpad Pro MK3 as a control surface.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lppro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lppro v0.1.0")
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Activate the surface and print pad events until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, engine, err := buildSurface()
		if err != nil {
			return err
		}
		defer engine.Close()
		defer s.Close()

		s.OnPadEvent = func(ev surface.PadEvent) {
			log.WithFields(log.Fields{
				"pad": ev.ID, "x": ev.X, "y": ev.Y, "pressed": ev.Pressed,
			}).Info("pad event")
		}

		if err := s.Activate(); err != nil {
			return err
		}

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		s.Deactivate()
		return nil
	},
}

var (
	scrollColor string
	scrollLoop  bool
	scrollSpeed float64
)

var scrollCmd = &cobra.Command{
	Use:   "scroll [text]",
	Short: "Scroll text across the pad grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, engine, err := buildSurface()
		if err != nil {
			return err
		}
		defer engine.Close()
		defer s.Close()

		if err := s.Activate(); err != nil {
			return err
		}

		s.ScrollText(args[0], int(namedColor(scrollColor)), scrollLoop, scrollSpeed)
		time.Sleep(time.Duration(2+len(args[0])) * 500 * time.Millisecond)

		s.Deactivate()
		return nil
	},
}

var lightshowCmd = &cobra.Command{
	Use:   "lightshow",
	Short: "Sweep a color across the grid, then clear it",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, engine, err := buildSurface()
		if err != nil {
			return err
		}
		defer engine.Close()
		defer s.Close()

		if err := s.Activate(); err != nil {
			return err
		}

		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				color := palette.Nearest(uint8(32*row), uint8(32*col), 128)
				s.LightPad(pad.GridID(row, col), int(color), pad.Static)
			}
			time.Sleep(120 * time.Millisecond)
		}
		time.Sleep(time.Second)
		s.AllPadsOff()

		s.Deactivate()
		return nil
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scrollCmd)
	rootCmd.AddCommand(lightshowCmd)

	scrollCmd.Flags().StringVar(&scrollColor, "color", "white", "palette color name")
	scrollCmd.Flags().BoolVar(&scrollLoop, "loop", false, "loop the text")
	scrollCmd.Flags().Float64Var(&scrollSpeed, "speed", 0, "scroll speed, 0 for device default")

	viper.SetDefault("ports.direct", surface.DefaultOptions().DirectPortPattern)
	viper.SetDefault("ports.daw", surface.DefaultOptions().DAWPortPattern)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LPPRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func buildSurface() (*surface.Surface, *ports.Engine, error) {
	state, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := state.Save(); err != nil {
		log.WithError(err).Warn("could not persist surface state")
	}

	engine, err := ports.NewEngine()
	if err != nil {
		return nil, nil, err
	}

	opts := surface.Options{
		DirectPortPattern: viper.GetString("ports.direct"),
		DAWPortPattern:    viper.GetString("ports.daw"),
	}
	return surface.New(engine, state, opts), engine, nil
}

func namedColor(name string) palette.Index {
	switch strings.ToLower(name) {
	case "red":
		return palette.Red
	case "green":
		return palette.Green
	case "blue":
		return palette.Blue
	case "amber", "orange":
		return palette.Amber
	case "yellow":
		return palette.Yellow
	case "cyan":
		return palette.Cyan
	default:
		return palette.White
	}
}
