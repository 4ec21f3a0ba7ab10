package capture

import "errors"

// Config holds parameters for Store.Attach.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Config and lifecycle errors.
var (
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrStoreDetached   = errors.New("store is not attached")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
