package pwa

// Installation is the installation status reported to the page.
type Installation string

const (
	StatusInstalled    Installation = "installed"
	StatusInstallable  Installation = "installable"
	StatusNotSupported Installation = "not-supported"
)

// DisplayModeStandalone is the display mode of an installed app.
const DisplayModeStandalone = "standalone"

// Status derives the installation status from the page's display mode and
// whether the browser supports service workers.
func Status(displayMode string, serviceWorker bool) Installation {
	switch {
	case displayMode == DisplayModeStandalone:
		return StatusInstalled
	case serviceWorker:
		return StatusInstallable
	default:
		return StatusNotSupported
	}
}
