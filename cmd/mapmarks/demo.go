package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mapmarks/engine/internal/dispatcher"
)

// populateDemoData drives the dispatcher with a scripted editing session
// so the whole gesture surface gets exercised against a live engine.
func populateDemoData() {
	var (
		numRandomMarkers = 12

		settlements = []struct {
			name        string
			category    string
			description string
		}{
			{"Hightown", "city", "Walled capital on the bluff"},
			{"Port Briar", "town", "Harbor town, ferry landing"},
			{"Ashford", "town", "Crossroads market"},
			{"Ambush site", "event", "Convoy hit at dawn"},
			{"Old Keep", "ruin", "Collapsed watchtower"},
		}
	)

	dispatch := func(command string, args ...string) any {
		result, err := eventDispatcher.Dispatch(dispatcher.Event{
			Command:   command,
			Args:      args,
			Timestamp: time.Now(),
		})
		if err != nil {
			Logger.Error("Demo gesture failed", "command", command, "error", err)
			return nil
		}
		return result
	}

	surface := sessionService.Surface()
	randomX := func() float64 {
		return surface.ExtentMin.X + rand.Float64()*(surface.ExtentMax.X-surface.ExtentMin.X)
	}
	randomY := func() float64 {
		return surface.ExtentMin.Y + rand.Float64()*(surface.ExtentMax.Y-surface.ExtentMin.Y)
	}

	// place the named settlements through the full arm/click protocol
	for _, s := range settlements {
		dispatch(":MARKER:ARM:")
		result := dispatch(":MAP:CLICK:",
			strconv.FormatFloat(randomX(), 'f', -1, 64),
			strconv.FormatFloat(randomY(), 'f', -1, 64))
		id, ok := result.(string)
		if !ok || id == "ignored" {
			continue
		}
		dispatch(":MARKER:UPDATE:", id, "name", s.name)
		dispatch(":MARKER:UPDATE:", id, "category", s.category)
		dispatch(":MARKER:UPDATE:", id, "description", s.description)
	}

	// filler markers, left as the placement default
	for i := 0; i < numRandomMarkers; i++ {
		dispatch(":MARKER:ARM:")
		dispatch(":MAP:CLICK:",
			strconv.FormatFloat(randomX(), 'f', -1, 64),
			strconv.FormatFloat(randomY(), 'f', -1, 64))
	}

	// exercise hover, drag, and the two-step delete on the first marker
	if list := markerStore.List(); len(list) > 0 {
		first := list[0]
		dispatch(":MARKER:HOVER:", first.ID)
		dispatch(":MARKER:UNHOVER:")
		dispatch(":MARKER:MOVE:", first.ID,
			strconv.FormatFloat(randomX(), 'f', -1, 64),
			strconv.FormatFloat(randomY(), 'f', -1, 64))

		last := list[len(list)-1]
		dispatch(":MARKER:DELETE:REQUEST:", last.ID)
		dispatch(":MARKER:DELETE:CANCEL:")
		dispatch(":MARKER:DELETE:REQUEST:", last.ID)
		dispatch(":MARKER:DELETE:CONFIRM:")
	}

	dispatch(":LIST:TOGGLE:")

	frame := sessionService.Frame()
	Logger.Info("Demo session state",
		"markers", markerStore.Len(),
		"sprites", len(frame.Sprites),
		"cards", len(frame.Cards),
		"listVisible", frame.ListVisible,
	)

	if result := dispatch(":EXPORT:"); result != nil {
		fmt.Println(result.(string))
	}
	printNotices()
}
