package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/sandboxvm/vmimages/log"
	"github.com/tj/go-spin"
)

// ProgressSpinner is an indefinite progress indicator shown while an
// external tool runs.
type ProgressSpinner struct {
	spinner *spin.Spinner
	message string
	wg      *sync.WaitGroup

	done     bool
	spinning bool
}

// Start starts the spinner with the given label.
func (ps *ProgressSpinner) Start(messages ...interface{}) {
	ps.message = fmt.Sprint(messages...)
	ps.spinner = spin.New()
	ps.done = false
	ps.spinning = true
	ps.wg = &sync.WaitGroup{}
	ps.wg.Add(1)

	go func() {
		for !ps.done {
			fmt.Printf("\r%s %s", log.Yellow(ps.spinner.Next()), ps.message)
			time.Sleep(time.Millisecond * 100)
		}
		ps.wg.Done()
		ps.spinning = false
	}()
}

// Do executes the given function with the given messages as label.
func (ps *ProgressSpinner) Do(workFunc func() error, messages ...interface{}) error {
	ps.Start(messages...)
	if err := workFunc(); err != nil {
		ps.stop()
		return err
	}
	ps.stop()
	return nil
}

func (ps *ProgressSpinner) stop() {
	if !ps.spinning {
		return
	}
	ps.done = true
	ps.wg.Wait()
	fmt.Printf("\r%s     \n", ps.message)
}

// Done stops the spinner.
func (ps *ProgressSpinner) Done() {
	ps.stop()
}
