package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/iburimskiy/hero-particles/internal/config"
	"github.com/iburimskiy/hero-particles/internal/game"
)

func newCommand() *cobra.Command {
	var (
		configFile  string
		printConfig bool
	)

	cmd := &cobra.Command{
		Use:           "hero-particles",
		Short:         "Drifting particle field with proximity links",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(viper.New(), configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if printConfig {
				out, err := yaml.Marshal(s)
				if err != nil {
					return errors.Wrap(err, "encode settings")
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return run(s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.BoolVar(&printConfig, "print-config", false, "print the effective settings and exit")
	flags.Int("width", config.WindowWidth, "initial window width in logical pixels")
	flags.Int("height", config.WindowHeight, "initial window height in logical pixels")
	flags.String("title", "Hero particles", "window title")
	flags.Int("tps", 60, "ticks per second")
	flags.Uint64("seed", 0, "random seed, 0 for a time-based seed")
	flags.String("background", "#0a0a0a", "background color")
	flags.Bool("debug", false, "show the debug overlay (toggle with F3)")
	flags.String("snapshot-dir", "", "write snapshots here instead of asking")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	return cmd
}

func run(s config.Settings) error {
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(s.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.TPS)

	g, err := game.NewGame(s)
	if err != nil {
		return err
	}
	defer g.Close()

	klog.V(1).Infof("Starting %dx%d window at %d TPS", s.Width, s.Height, s.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

func main() {
	defer klog.Flush()
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		klog.Flush()
		os.Exit(1)
	}
}
