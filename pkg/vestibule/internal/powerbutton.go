package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig configures the hardware power button watcher for
// devices that expose the button as an evdev input device.
type PowerButtonConfig struct {
	DevicePath      string        // evdev device node, e.g. /dev/input/event1
	ShortPressMax   time.Duration // presses up to this length suspend; longer presses shut down
	CoolDownTime    time.Duration // ignore further presses for this long after a suspend
	SuspendScript   string        // script run on a short press
	ShutdownCommand string        // command run on a long press
}

// PowerButtonHandler watches the configured input device for KEY_POWER
// events. A short press runs the suspend script; a long press requests quit
// and runs the shutdown command. Runs on its own goroutine for the lifetime
// of the window.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	defer wg.Done()

	log := GetInternalLogger()

	if pbc.ShortPressMax == 0 {
		pbc.ShortPressMax = 2 * time.Second
	}
	if pbc.CoolDownTime == 0 {
		pbc.CoolDownTime = time.Second
	}

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		log.Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}
	defer device.Close()

	coolingDown := atomic.NewBool(false)
	var pressedAt time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			log.Error("Power button read failed", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != evdev.KEY_POWER {
			continue
		}

		switch event.Value {
		case 1: // pressed
			pressedAt = time.Now()

		case 0: // released
			if pressedAt.IsZero() || coolingDown.Load() {
				continue
			}

			if time.Since(pressedAt) <= pbc.ShortPressMax {
				log.Info("Power button short press, suspending")
				if pbc.SuspendScript != "" {
					if err := exec.Command(pbc.SuspendScript).Run(); err != nil {
						log.Error("Suspend script failed", "script", pbc.SuspendScript, "error", err)
					}
				}
				coolingDown.Store(true)
				time.AfterFunc(pbc.CoolDownTime, func() { coolingDown.Store(false) })
			} else {
				log.Info("Power button long press, shutting down")
				GetInputProcessor().RequestQuit()
				if pbc.ShutdownCommand != "" {
					if err := exec.Command(pbc.ShutdownCommand).Run(); err != nil {
						log.Error("Shutdown command failed", "command", pbc.ShutdownCommand, "error", err)
					}
				}
				return
			}
		}
	}
}
