// internal/app/system/limits/limits.go
package limits

// Request size limits for the public endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxHostEventBody is the maximum size of a posted host event.
	MaxHostEventBody = 4 << 10 // 4 KB

	// MaxHostEventDetail caps the stored detail of a host event, in bytes.
	// Longer details (usually error messages) are truncated.
	MaxHostEventDetail = 200
)
