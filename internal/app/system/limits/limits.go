// internal/app/system/limits/limits.go
package limits

// Request body size limits. Bodies over the limit fail to decode and are
// reported as invalid.
const (
	// MaxJSONBody is the largest JSON request body accepted by the API.
	MaxJSONBody = 1 << 20 // 1 MB
)
