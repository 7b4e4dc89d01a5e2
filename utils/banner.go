package utils

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	spinnerMu sync.Mutex
	active    *spinner.Spinner
)

// DrawBanner prints the application banner to stderr so that stdout stays
// clean for table and json output.
func DrawBanner() {
	banner := figure.NewFigure("RI Doctor", "small", true)
	fmt.Fprintln(os.Stderr, text.FgHiCyan.Sprint(banner.String()))
}

func StartSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if active != nil {
		return
	}
	active = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	active.Suffix = " Fetching instances and reservations..."
	active.Start()
}

// StopSpinner is safe to call when no spinner is running.
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if active == nil {
		return
	}
	active.Stop()
	active = nil
}
