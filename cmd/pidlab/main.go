package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rickhull/pid-controller-ng/internal/config"
	"github.com/rickhull/pid-controller-ng/internal/device"
	"github.com/rickhull/pid-controller-ng/internal/loop"
	"github.com/rickhull/pid-controller-ng/internal/metrics"
	"github.com/rickhull/pid-controller-ng/internal/optim"
	"github.com/rickhull/pid-controller-ng/internal/storage"
	"github.com/rickhull/pid-controller-ng/internal/tui"
	"github.com/rickhull/pid-controller-ng/internal/viz"
	"github.com/rickhull/pid-controller-ng/pid"
)

var (
	dataDir    string
	setpoint   float64
	dt         float64
	duration   float64
	kp         float64
	ki         float64
	kd         float64
	outLo      float64
	outHi      float64
	watts      float64
	configFile string
	preset     string
	showPlot   bool
	frameRate  int

	kpValues     []float64
	kiValues     []float64
	searchMetric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pidlab",
		Short: "discrete-time feedback control lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pidlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [plant]",
		Short: "run a closed-loop simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&setpoint, "setpoint", config.DefaultSetpoint, "target value")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (seconds)")
	runCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	runCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	runCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	runCmd.Flags().Float64Var(&outLo, "out-lo", 0, "output clamp lower bound")
	runCmd.Flags().Float64Var(&outHi, "out-hi", 0, "output clamp upper bound")
	runCmd.Flags().Float64Var(&watts, "watts", config.DefaultWatts, "heater wattage (room plant)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the measurement trace")

	tuneCmd := &cobra.Command{
		Use:   "tune [mode] [ku] [tu]",
		Short: "Ziegler-Nichols tuning constants",
		Args:  cobra.ExactArgs(3),
		RunE:  tuneController,
	}

	liveCmd := &cobra.Command{
		Use:   "live [plant]",
		Short: "run with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&setpoint, "setpoint", config.DefaultSetpoint, "target value")
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	liveCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	liveCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	liveCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	liveCmd.Flags().Float64Var(&outLo, "out-lo", 0, "output clamp lower bound")
	liveCmd.Flags().Float64Var(&outHi, "out-hi", 0, "output clamp upper bound")
	liveCmd.Flags().Float64Var(&watts, "watts", config.DefaultWatts, "heater wattage (room plant)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	searchCmd := &cobra.Command{
		Use:   "search [plant]",
		Short: "grid-search gains against a plant",
		Args:  cobra.ExactArgs(1),
		RunE:  searchGains,
	}
	searchCmd.Flags().Float64Var(&setpoint, "setpoint", config.DefaultSetpoint, "target value")
	searchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	searchCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (seconds)")
	searchCmd.Flags().Float64Var(&watts, "watts", config.DefaultWatts, "heater wattage (room plant)")
	searchCmd.Flags().Float64SliceVar(&kpValues, "kp-values", []float64{0.1, 0.2, 0.5, 1.0}, "kp candidates")
	searchCmd.Flags().Float64SliceVar(&kiValues, "ki-values", []float64{0, 0.001, 0.005, 0.01}, "ki candidates")
	searchCmd.Flags().StringVar(&searchMetric, "metric", "settling_time", "metric to minimize")

	presetsCmd := &cobra.Command{
		Use:   "presets [plant]",
		Short: "list presets for a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for plant: %s (known: %v)\n", args[0], device.ListPlants())
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, tuneCmd, liveCmd, listCmd, plotCmd, exportCmd, searchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags: flags win over the
// file, the file wins over the preset.
func buildConfig(cmd *cobra.Command, plant string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Plant = plant

	if preset != "" {
		p := config.GetPreset(plant, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(plant))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Plant = plant
	}

	if cmd.Flags().Changed("setpoint") {
		cfg.Setpoint = setpoint
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("kp") {
		cfg.Gains.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Gains.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Gains.Kd = kd
	}
	if cmd.Flags().Changed("watts") {
		cfg.Watts = watts
	}
	if cmd.Flags().Changed("out-lo") || cmd.Flags().Changed("out-hi") {
		cfg.Limits.Output = []float64{outLo, outHi}
	}

	return cfg, nil
}

func buildLoop(cfg *config.Config) (*pid.PIDController, pid.Updatable, error) {
	ctl, err := cfg.BuildPID()
	if err != nil {
		return nil, nil, err
	}

	plant, err := device.NewPlant(cfg.Plant, device.Params{
		Dt:       cfg.Dt,
		Setpoint: cfg.Setpoint,
		Watts:    cfg.Watts,
	})
	if err != nil {
		return nil, nil, err
	}

	// the room consumes watts, not a unit drive signal; scale the
	// clamped controller output up to heater power
	if room, ok := plant.(*device.Room); ok && cfg.Watts > 0 {
		return ctl, &scaledPlant{plant: room, scale: cfg.Watts}, nil
	}
	return ctl, plant, nil
}

// scaledPlant multiplies the control signal before the plant sees it.
type scaledPlant struct {
	plant pid.Updatable
	scale float64
}

func (s *scaledPlant) Update(input float64) float64 {
	return s.plant.Update(input * s.scale)
}

func (s *scaledPlant) Output() float64 { return s.plant.Output() }

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	ctl, plant, err := buildLoop(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	l := loop.New(ctl, plant)
	l.AddMetric(metrics.NewControlEffort())
	l.AddMetric(metrics.NewOvershoot(cfg.Setpoint))
	l.AddMetric(metrics.NewSettlingTime(cfg.Setpoint, 0.02*cfg.Setpoint))

	fmt.Printf("running %s loop...\n", cfg.Plant)
	start := time.Now()

	result, err := l.Run(context.Background(), loop.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Plant:    cfg.Plant,
		Setpoint: cfg.Setpoint,
		Kp:       ctl.Kp,
		Ki:       ctl.Ki,
		Kd:       ctl.Kd,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.PlotSeries(result.Measures, cfg.Setpoint, "measure vs setpoint"))
	}

	return nil
}

func tuneController(cmd *cobra.Command, args []string) error {
	ku, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid ku: %w", err)
	}
	tu, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid tu: %w", err)
	}

	params, err := pid.Tune(pid.TuneMode(args[0]), ku, tu)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONSTANT\tVALUE")
	for _, key := range []string{"kp", "ki", "kd", "ti", "td"} {
		if val, ok := params[key]; ok {
			fmt.Fprintf(w, "%s\t%.6f\n", key, val)
		}
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	ctl, plant, err := buildLoop(cfg)
	if err != nil {
		return err
	}

	return tui.Run(ctl, plant, cfg.Plant, frameRate)
}

func searchGains(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	build := func(gains map[string]float64) (*loop.Loop, loop.Config, error) {
		trial := *cfg
		trial.Gains.Kp = gains["kp"]
		trial.Gains.Ki = gains["ki"]

		ctl, plant, err := buildLoop(&trial)
		if err != nil {
			return nil, loop.Config{}, err
		}

		l := loop.New(ctl, plant)
		l.AddMetric(metrics.NewControlEffort())
		l.AddMetric(metrics.NewOvershoot(trial.Setpoint))
		l.AddMetric(metrics.NewSettlingTime(trial.Setpoint, 0.02*trial.Setpoint))
		return l, loop.Config{Dt: trial.Dt, Duration: trial.Duration}, nil
	}

	fmt.Printf("searching %d gain combinations...\n", len(kpValues)*len(kiValues))

	search := optim.NewGridSearch([]string{"kp", "ki"}, [][]float64{kpValues, kiValues})
	bestGains, best, err := search.Search(context.Background(), build, searchMetric)
	if err != nil {
		return err
	}
	if bestGains == nil {
		return fmt.Errorf("no gain combination produced a valid run")
	}

	fmt.Printf("best %s: %.6f\n", searchMetric, best)
	fmt.Printf("  kp: %.4f\n  ki: %.4f\n", bestGains["kp"], bestGains["ki"])
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLANT\tSAVED\tSETPOINT\tDT\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.4fs\t%.0fs\n",
			run.ID,
			run.Plant,
			run.Saved.Format("2006-01-02 15:04:05"),
			run.Setpoint,
			run.Dt,
			run.Duration,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, measures, outputs, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(measures) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("plant: %s\n", meta.Plant)
	fmt.Printf("samples: %d\n\n", len(measures))

	fmt.Println(viz.PlotSeries(measures, meta.Setpoint, "measure vs setpoint"))
	fmt.Println()
	fmt.Println(viz.Plot(outputs, "control output"))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
