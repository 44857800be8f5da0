//go:build !linux

package diagnostics

// NewProcessSampler returns ErrSamplerUnsupported outside Linux.
func NewProcessSampler() (Sampler, error) {
	return nil, ErrSamplerUnsupported
}
