package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/flight"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/schema"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	timeAcc    float64
	integrator string
	field      string
	jsonOut    string
	svgOut     string
	live       bool
	profiling  bool
	plotEntity string
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "orbital spaceflight simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [snapshot.yaml]",
		Short: "simulate a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file (flags override)")
	runCmd.Flags().StringVar(&preset, "preset", "",
		fmt.Sprintf("named run preset, one of %v", config.ListPresets()))
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in simulated seconds")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in simulated seconds")
	runCmd.Flags().Float64Var(&timeAcc, "time-acc", 0, "override snapshot time acceleration")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "euler or rk4")
	runCmd.Flags().StringVar(&field, "field", config.DefaultField, "buffer column to record")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also export the whole run to a JSON file")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "also render the orbit trajectories to an SVG file")
	runCmd.Flags().BoolVar(&live, "live", false, "interactive live view instead of a batch run")
	runCmd.Flags().BoolVar(&profiling, "profile", false, "write a CPU profile")

	inspectCmd := &cobra.Command{
		Use:   "inspect [snapshot.yaml]",
		Short: "print a snapshot's entities and engineering state",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectSnapshot,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run-id]",
		Short: "graph a recorded column from a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotEntity, "entity", "", "entity to plot (default: the run's craft)")

	rootCmd.AddCommand(runCmd, inspectCmd, runsCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRunConfig(snapshotPath string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q, have %v", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Warn().Err(err).Str("path", configFile).Msg("config unreadable, using defaults")
		} else {
			cfg = loaded
		}
	}
	cfg.Snapshot = snapshotPath
	if dt != config.DefaultDt {
		cfg.Dt = dt
	}
	if duration != config.DefaultDuration {
		cfg.Duration = duration
	}
	if integrator != "rk4" {
		cfg.Integrator = integrator
	}
	if field != config.DefaultField {
		cfg.Output.Field = field
	}
	return cfg, nil
}

func newIntegrator(name string) (ode.Integrator, error) {
	switch name {
	case "euler":
		return ode.NewEuler(), nil
	case "rk4":
		return ode.NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadRunConfig(args[0])
	if err != nil {
		return err
	}

	snap, err := schema.Load(cfg.Snapshot)
	if err != nil {
		return err
	}
	state, err := physics.FromSnapshot(snap)
	if err != nil {
		return err
	}
	switch {
	case timeAcc > 0:
		state.SetTimeAcc(timeAcc)
	case cfg.TimeAcc > 0 && cfg.TimeAcc != config.DefaultTimeAcc:
		state.SetTimeAcc(cfg.TimeAcc)
	}

	integ, err := newIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}
	system := flight.NewGravity(state.AsSnapshot())

	log.Info().
		Str("snapshot", cfg.Snapshot).
		Int("entities", state.Len()).
		Str("craft", state.Craft()).
		Float64("dt", cfg.Dt).
		Float64("time_acc", state.TimeAcc()).
		Msg("starting run")

	if live {
		return tui.Run(system, integ, state, cfg.Dt)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simulator := sim.New(system, integ)
	simulator.AddMetric(metrics.NewEnergyDrift(system))
	simulator.AddMetric(metrics.NewFuelUsed())
	result, err := simulator.Run(ctx, state, sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Snapshot, cfg.Integrator, cfg.Output.Field, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, cfg.Snapshot, cfg.Integrator, cfg.Dt, cfg.Duration, result); err != nil {
			return err
		}
	}
	if svgOut != "" {
		if err := export.WriteOrbitSVG(svgOut, result, 800, 800); err != nil {
			return err
		}
	}

	log.Info().
		Str("run", runID).
		Int("steps", result.StepsTaken).
		Float64("t_final", result.Final.Timestamp()).
		Float64("energy_drift", result.Metrics["energy_drift"]).
		Float64("fuel_used", result.Metrics["fuel_used"]).
		Msg("run saved")
	return nil
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	alarmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func alarmFlag(label string, on bool) string {
	if on {
		return alarmStyle.Render(label)
	}
	return okStyle.Render(label)
}

func inspectSnapshot(cmd *cobra.Command, args []string) error {
	snap, err := schema.Load(args[0])
	if err != nil {
		return err
	}
	state, err := physics.FromSnapshot(snap)
	if err != nil {
		return err
	}

	fmt.Printf("craft: %s   reference: %s   target: %s   navmode: %s\n\n",
		state.Craft(), state.Reference(), state.Target(), state.Navmode())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY\tVX\tVY\tFUEL\tLANDED ON")
	for _, e := range state.Entities() {
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\t%.3e\t%.0f\t%s\n",
			e.Name(), e.X(), e.Y(), e.VX(), e.VY(), e.Fuel(), e.LandedOn())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	eng := state.Engineering()
	fmt.Printf("\nalarms: %s %s %s %s %s\n",
		alarmFlag("MASTER", eng.MasterAlarm()),
		alarmFlag("RADIATION", eng.RadiationAlarm()),
		alarmFlag("ASTEROID", eng.AsteroidAlarm()),
		alarmFlag("HAB-REACTOR", eng.HabReactorAlarm()),
		alarmFlag("AYSE-REACTOR", eng.AyseReactorAlarm()))

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nCOMPONENT\tCONNECTED\tTEMP\tLOOP")
	components := eng.Components()
	for i := 0; i < components.Len(); i++ {
		c, err := components.At(i)
		if err != nil {
			return err
		}
		loop := "-"
		if ref := c.AttachedToCoolantLoop(); ref != 0 {
			loop = names.CoolantLoopNames[ref-1]
		}
		fmt.Fprintf(w, "%s\t%v\t%.1f\t%s\n", c.Name(), c.Connected(), c.Temperature(), loop)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSNAPSHOT\tCRAFT\tFIELD\tDT\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.0f\n",
			r.ID, r.Snapshot, r.Craft, r.Field, r.Dt, r.Duration)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	header, _, rows, err := store.LoadTrace(args[0])
	if err != nil {
		return err
	}

	entity := plotEntity
	if entity == "" {
		entity = meta.Craft
	}
	col := names.Index(header, entity)
	if col == -1 {
		return fmt.Errorf("entity %q not in run %s", entity, meta.ID)
	}

	series := make([]float64, len(rows))
	for i, row := range rows {
		series[i] = row[col]
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(12), asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s of %s", meta.Field, entity))))
	return nil
}
