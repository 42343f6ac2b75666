//go:build planarnochecks

package affine

// boundsChecks is disabled by the planarnochecks build tag: indexing past the
// valid range is undefined behavior in this configuration, exactly like a
// stripped release assert.
const boundsChecks = false
