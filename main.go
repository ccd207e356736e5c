package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dimfu/clack-controller/state"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	// flags
	tempo      int64
	timesig    string
	preset     string
	presetPath string
	hiSample   string
	loSample   string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "clack",
		Short:        "Terminal metronome",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetronome(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&presetPath, "presets", DefaultPresetPath(), "preset file, .json or .yaml")
	rootCmd.PersistentFlags().Int64Var(&tempo, "tempo", DEFAULT_TEMPO, "the speed at which a passage of this metronome should be played")
	rootCmd.PersistentFlags().StringVar(&timesig, "timesig", DEFAULT_TIMESIG, "indicate how many beats are in each measure")
	rootCmd.Flags().StringVar(&preset, "preset", "", "start from a saved preset")
	rootCmd.Flags().StringVar(&hiSample, "hi", "./static/hi.wav", "accent sample")
	rootCmd.Flags().StringVar(&loSample, "lo", "./static/lo.wav", "beat sample")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "save <key>",
		Short: "Save --tempo and --timesig as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CreateConf(presetPath, Config{Key: args[0], Tempo: tempo, Timesig: timesig})
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return DeleteConfig(presetPath, args[0])
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := ListConfig(presetPath)
			if err != nil {
				return err
			}
			for _, c := range configs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bpm\t%s\n", c.Key, c.Tempo, c.Timesig)
			}
			return nil
		},
	})

	return rootCmd
}

// newStore builds the shared state from the flags, or from a preset when one
// is named.
func newStore(cmd *cobra.Command) (*state.Store, error) {
	startTempo, startSig := tempo, timesig
	if preset != "" {
		c, err := LoadPreset(presetPath, preset)
		if err != nil {
			return nil, err
		}
		if !cmd.Flags().Changed("tempo") {
			startTempo = c.Tempo
		}
		if !cmd.Flags().Changed("timesig") {
			startSig = c.Timesig
		}
	}

	if !ValidTempo(startTempo) {
		return nil, fmt.Errorf("tempo is not valid make sure its between %v and %v", state.MinTempo, state.MaxTempo)
	}
	mode, err := ValidTimeSig(startSig)
	if err != nil {
		return nil, err
	}

	return state.New(state.Config{
		BeatsPerMeasure:  beatsPerMeasure(TIME_SIGNATURES),
		DefaultTempo:     uint16(startTempo),
		DefaultSignature: mode,
	})
}

func runMetronome(cmd *cobra.Command) error {
	store, err := newStore(cmd)
	if err != nil {
		return err
	}

	writer := newStatusWriter(os.Stdout)
	defer log.SetOutput(os.Stderr)

	var clicker Clicker = silentPlayer{}
	player, err := NewAudioPlayer([]string{hiSample, loSample})
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		atexit.Register(player.Close)
		clicker = player
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		NewMetronome(store, clicker).Run(ctx)
	}()
	go func() {
		defer wg.Done()
		runDisplay(ctx, writer, store, TIME_SIGNATURES)
	}()

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := runInput(ctx, store, cancel); err != nil {
				log.Printf("keyboard disabled: %v", err)
			}
		}()
	}

	wg.Wait()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
