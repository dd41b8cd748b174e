package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mapmarks/engine/internal/clipboard"
	"github.com/mapmarks/engine/internal/config"
	"github.com/mapmarks/engine/internal/dispatcher"
	"github.com/mapmarks/engine/internal/gateway"
	"github.com/mapmarks/engine/internal/geo"
	"github.com/mapmarks/engine/internal/hover"
	"github.com/mapmarks/engine/internal/listview"
	"github.com/mapmarks/engine/internal/logging"
	"github.com/mapmarks/engine/internal/placement"
	"github.com/mapmarks/engine/internal/session"
	"github.com/mapmarks/engine/internal/store"
	"github.com/mapmarks/engine/internal/view"
	"github.com/mapmarks/engine/pkg/core"

	"github.com/spf13/viper"
)

var (
	Version   string = "0.1.0"
	BuildDate string = "unknown"
)

var (
	SessionStartTime = time.Now()

	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	logFile *os.File

	// Services
	markerStore      *store.Store
	hoverCoordinator *hover.Coordinator
	placementCtrl    *placement.Controller
	listModel        *listview.Model
	serializer       *gateway.Gateway
	sessionService   *session.Service
	eventDispatcher  *dispatcher.Dispatcher
)

func setup() error {
	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(nil, "info", nil)
	Logger = SlogManager.Logger()

	if err := config.Load("."); err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	} else {
		Logger.Info("Loaded config")
	}

	logsDir := viper.GetString("logsDir")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		os.Mkdir(logsDir, 0755)
	}

	logFilePath := filepath.Join(logsDir,
		fmt.Sprintf("mapmarks.%s.log", SessionStartTime.Format("20060102_150405")))

	var err error
	logFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		Logger.Error("Failed to create/open log file!", "error", err, "path", logFilePath)
	}

	var graylog io.Writer
	gcfg := config.GetGraylogConfig()
	if gcfg.Enabled {
		graylog, err = logging.NewGraylogWriter(gcfg.Address)
		if err != nil {
			Logger.Error("Failed to connect Graylog writer", "error", err, "address", gcfg.Address)
			graylog = nil
		}
	}

	SlogManager.Setup(logFile, viper.GetString("logLevel"), graylog)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", logFilePath)

	return buildSession()
}

func buildSession() error {
	mapCfg := config.GetMapConfig()
	extent := geo.NewExtent(
		core.Position{X: mapCfg.ExtentMinX, Y: mapCfg.ExtentMinY},
		core.Position{X: mapCfg.ExtentMaxX, Y: mapCfg.ExtentMaxY},
	)

	markerStore = store.New()
	hoverCoordinator = hover.New()
	placementCtrl = placement.New(markerStore, extent, config.GetPlacementConfig().AnchorOffset)
	listModel = listview.NewModel(markerStore, hoverCoordinator)
	serializer = gateway.New(markerStore, clipboard.NewSystem(), Logger, viper.GetString("export.indent"))

	sessionService = session.NewService(session.Dependencies{
		Store:      markerStore,
		Hover:      hoverCoordinator,
		Placement:  placementCtrl,
		List:       listModel,
		View:       view.NewAdapter(config.GetIconConfig()),
		Gateway:    serializer,
		Surface:    view.Surface(mapCfg),
		LogManager: SlogManager,
	})

	dispatcherLogger := logging.NewDispatcherLogger(Logger)
	var err error
	eventDispatcher, err = dispatcher.New(dispatcherLogger)
	if err != nil {
		return fmt.Errorf("failed to create dispatcher: %w", err)
	}
	sessionService.RegisterHandlers(eventDispatcher)
	Logger.Info("Session handlers registered with dispatcher")

	if err := serializer.LoadSeed(viper.GetString("seed.path")); err != nil {
		Logger.Warn("Seed load failed", "error", err)
	}

	return nil
}

func printNotices() {
	for _, n := range sessionService.Notices() {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	}
}

func runExport() error {
	result, err := eventDispatcher.Dispatch(dispatcher.Event{
		Command:   ":EXPORT:",
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}
	if text, ok := result.(string); ok {
		fmt.Println(text)
	}
	printNotices()
	return nil
}

func runImport(path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(bufio.NewReader(os.Stdin))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading import payload: %w", err)
	}

	_, err = eventDispatcher.Dispatch(dispatcher.Event{
		Command:   ":IMPORT:",
		Args:      []string{string(data)},
		Timestamp: time.Now(),
	})
	printNotices()
	if err != nil {
		return err
	}

	// persist the imported set as the new seed so the next session sees it
	text, exportErr := serializer.Export(context.Background())
	if exportErr != nil && !errors.Is(exportErr, gateway.ErrClipboard) {
		return exportErr
	}
	seedPath := viper.GetString("seed.path")
	if writeErr := os.WriteFile(seedPath, []byte(text), 0644); writeErr != nil {
		Logger.Warn("Failed to update seed file", "error", writeErr, "path", seedPath)
	}
	return nil
}

func main() {
	if err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()

	Logger.Info("mapmarks starting", "version", Version, "buildDate", BuildDate)

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("usage: mapmarks <demo|export|import <file|->|version>")
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "demo":
		Logger.Info("Populating demo data...")
		demoStart := time.Now()
		populateDemoData()
		Logger.Info("Demo data populated.", "duration", time.Since(demoStart))
	case "export":
		err = runExport()
	case "import":
		if len(args) < 2 {
			err = fmt.Errorf("import needs a file path or - for stdin")
		} else {
			err = runImport(args[1])
		}
	case "version":
		fmt.Printf("mapmarks %s (%s)\n", Version, BuildDate)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
