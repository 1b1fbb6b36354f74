package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/vstick/internal/analysis"
	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/export"
	"github.com/san-kum/vstick/internal/gui"
	"github.com/san-kum/vstick/internal/joystick"
	"github.com/san-kum/vstick/internal/storage"
	"github.com/san-kum/vstick/internal/trace"
	"github.com/san-kum/vstick/internal/viz"
)

const (
	logFileName = "vstick.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	dataDir    string
	configFile string
	preset     string
	debug      bool
	record     bool
	// Joystick overrides
	boundSize      float64
	handleSize     float64
	minAxis        float64
	maxAxis        float64
	step           float64
	lockX          bool
	lockY          bool
	returnToCenter bool
	// Display
	theme string
	// Analysis
	rate       float64
	pathWidth  int
	pathHeight int
	saveReplay bool
	svgOut     string
	svgSize    int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vstick",
		Short: "virtual joystick for the terminal and the desktop",
		RunE:  runTUI,
	}

	def := joystick.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "write a debug log to the data directory")
	pf.BoolVar(&record, "record", false, "save the session on exit")
	pf.Float64Var(&boundSize, "bound", def.BoundSize, "bound diameter")
	pf.Float64Var(&handleSize, "handle", def.HandleSize, "handle diameter")
	pf.Float64Var(&minAxis, "min", def.MinAxis, "axis minimum")
	pf.Float64Var(&maxAxis, "max", def.MaxAxis, "axis maximum")
	pf.Float64Var(&step, "step", def.Step, "output step")
	pf.BoolVar(&lockX, "lock-x", def.StickOnXAxis, "lock movement to the x axis")
	pf.BoolVar(&lockY, "lock-y", def.StickOnYAxis, "lock movement to the y axis")
	pf.BoolVar(&returnToCenter, "return", def.ReturnToCenter, "return to centre on release")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the joystick in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the joystick in a window",
		RunE:  runGUI,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [trace.csv]",
		Short: "feed a recorded pointer trace through the joystick",
		Args:  cobra.ExactArgs(1),
		RunE:  replayTrace,
	}
	replayCmd.Flags().BoolVar(&saveReplay, "save", false, "store the replay as a session")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot session output",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [session_id]",
		Short: "session statistics and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSession,
	}
	analyzeCmd.Flags().Float64Var(&rate, "rate", 60, "resample rate (hz)")

	pathCmd := &cobra.Command{
		Use:   "path [session_id]",
		Short: "plot the handle path",
		Args:  cobra.ExactArgs(1),
		RunE:  pathPlot,
	}
	pathCmd.Flags().IntVar(&pathWidth, "width", 60, "plot width")
	pathCmd.Flags().IntVar(&pathHeight, "height", 30, "plot height")

	svgCmd := &cobra.Command{
		Use:   "svg [session_id]",
		Short: "export the handle path to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&svgSize, "size", 400, "image size in pixels")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session_id]",
		Short: "export session data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBOUND\tHANDLE\tRANGE\tSTEP\tLOCK\tRETURN")
			for _, name := range config.ListPresets() {
				j := config.GetPreset(name).Joystick
				fmt.Fprintf(w, "%s\t%g\t%g\t[%g, %g]\t%g\t%s\t%v\n",
					name, j.BoundSize, j.HandleSize, j.MinAxis, j.MaxAxis, j.Step,
					lockLabel(j.StickOnXAxis, j.StickOnYAxis), j.ReturnToCenter)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, replayCmd, listCmd, plotCmd, analyzeCmd, pathCmd, svgCmd, exportJSONCmd, presetsCmd, configCmd)
	return rootCmd
}

func lockLabel(x, y bool) string {
	switch {
	case x && y:
		return "xy"
	case x:
		return "x"
	case y:
		return "y"
	}
	return "-"
}

// loadConfig layers preset, config file and changed flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	j := &cfg.Joystick
	if flags.Changed("bound") {
		j.BoundSize = boundSize
	}
	if flags.Changed("handle") {
		j.HandleSize = handleSize
	}
	if flags.Changed("min") {
		j.MinAxis = minAxis
	}
	if flags.Changed("max") {
		j.MaxAxis = maxAxis
	}
	if flags.Changed("step") {
		j.Step = step
	}
	if flags.Changed("lock-x") {
		j.StickOnXAxis = lockX
	}
	if flags.Changed("lock-y") {
		j.StickOnYAxis = lockY
	}
	if flags.Changed("return") {
		j.ReturnToCenter = returnToCenter
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("record") {
		cfg.Session.Record = record
	}
	if flags.Changed("data") || cfg.Session.DataDir == "" {
		cfg.Session.DataDir = dataDir
	}

	return cfg, nil
}

// setupLogging routes the standard logger to a file in dir when debug is
// set and discards it otherwise. A log over maxLogSize is rotated once.
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// prepare loads the configuration, starts logging and reports anomalies the
// engine will degrade around.
func prepare(cmd *cobra.Command) (*config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logFile := setupLogging(debug, cfg.Session.DataDir)
	cleanup := func() {
		if logFile != nil {
			logFile.Close()
		}
	}

	for _, a := range cfg.Resolve(nil).Anomalies() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", a)
		log.Printf("config: %v", a)
	}
	return cfg, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var rec *trace.Recorder
	if cfg.Session.Record {
		rec = trace.NewRecorder()
	}

	if _, err := viz.Run(cfg, rec, log.Default()); err != nil {
		return err
	}
	return saveSession(cfg, "tui", rec)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var rec *trace.Recorder
	if cfg.Session.Record {
		rec = trace.NewRecorder()
	}

	gui.Run(cfg, rec, log.Default())
	return saveSession(cfg, "gui", rec)
}

// saveSession stores a recorded session; a nil or empty recorder is a no-op.
func saveSession(cfg *config.Config, source string, rec *trace.Recorder) error {
	if rec == nil || len(rec.Events()) == 0 {
		return nil
	}

	id, err := storeSession(cfg, storage.Session{
		Source:  source,
		Start:   rec.Start(),
		Events:  rec.Events(),
		Samples: rec.Samples(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("session id: %s\n", id)
	return nil
}

func storeSession(cfg *config.Config, sess storage.Session) (string, error) {
	st := storage.New(cfg.Session.DataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	sess.Preset = preset
	sess.Joystick = cfg.Joystick
	sess.Stats = analysis.Summarize(sess.Samples).Map()
	return st.Save(sess)
}

func replayTrace(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := trace.Read(f)
	if err != nil {
		return err
	}

	jc := cfg.Resolve(nil)
	size := cfg.BackgroundSize()
	samples := trace.Replay(jc, joystick.Rect{Width: size, Height: size}, events)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tX\tY")
	for _, s := range samples {
		fmt.Fprintf(w, "%.3f\t%g\t%g\n", s.T, s.X, s.Y)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	st := analysis.Summarize(samples)
	fmt.Printf("\nevents: %d  samples: %d  peak: %.2f  reversals: %d\n", len(events), st.Count, st.Peak, st.Reversals)

	if saveReplay {
		id, err := storeSession(cfg, storage.Session{Source: "replay", Events: events, Samples: samples})
		if err != nil {
			return err
		}
		fmt.Printf("session id: %s\n", id)
	}
	return nil
}

// sessionStore opens the store the interactive commands save into.
func sessionStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.Session.DataDir), nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tPRESET\tEVENTS\tSAMPLES\tPEAK")

	for _, s := range sessions {
		p := s.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\n",
			s.ID,
			s.Source,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			p,
			s.Events,
			s.Samples,
			s.Stats["peak"],
		)
	}

	return w.Flush()
}

func loadSamples(cmd *cobra.Command, id string) (*storage.SessionMetadata, []trace.Sample, error) {
	st, err := sessionStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}

	samples, err := st.LoadSamples(id)
	if err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, errors.New("no data to plot")
	}
	return meta, samples, nil
}

func plotSession(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadSamples(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("samples: %d\n\n", len(samples))

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s.X, s.Y
	}

	lo, hi := meta.Joystick.MinAxis, meta.Joystick.MaxAxis
	if lo > hi {
		lo, hi = hi, lo
	}

	graph := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("x (red) and y (blue) per update"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeSession(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadSamples(cmd, args[0])
	if err != nil {
		return err
	}

	st := analysis.Summarize(samples)
	fmt.Printf("analysis: %s\n\n", meta.ID)
	fmt.Printf("samples:   %d\n", st.Count)
	fmt.Printf("duration:  %.3f s\n", st.Duration)
	fmt.Printf("peak:      %.3f\n", st.Peak)
	fmt.Printf("mean:      %.3f\n", st.Mean)
	fmt.Printf("at rest:   %.1f%%\n", st.AtRest*100)
	fmt.Printf("reversals: %d\n\n", st.Reversals)

	for _, axis := range []analysis.Axis{analysis.AxisX, analysis.AxisY} {
		ps := analysis.Spectrum(analysis.Resample(samples, axis, rate))
		if len(ps) > 2 {
			graph := asciigraph.Plot(ps[1:],
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", axis)),
			)
			fmt.Println(graph)
		}

		freq, power := analysis.DominantFrequency(samples, axis, rate)
		if freq == 0 {
			fmt.Printf("%s: no dominant frequency\n\n", axis)
			continue
		}
		fmt.Printf("%s: dominant frequency %.3f hz (magnitude %.2f), period %.3f s\n\n", axis, freq, power, 1/freq)
	}

	return nil
}

func pathPlot(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadSamples(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("handle path: %s (%d samples)\n\n", meta.ID, len(samples))
	fmt.Println(analysis.PathToASCII(samples, meta.Joystick.MinAxis, meta.Joystick.MaxAxis, pathWidth, pathHeight))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadSamples(cmd, args[0])
	if err != nil {
		return err
	}

	svg := export.PathToSVG(samples, meta.Joystick.MinAxis, meta.Joystick.MaxAxis, svgSize, "#0088ff")
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

type sessionExport struct {
	*storage.SessionMetadata
	Events  []trace.Event  `json:"events"`
	Samples []trace.Sample `json:"samples"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	events, err := st.LoadEvents(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sessionExport{SessionMetadata: meta, Events: events, Samples: samples})
}
