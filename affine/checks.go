//go:build !planarnochecks

package affine

// boundsChecks gates the index assertions. The default build keeps them on;
// the planarnochecks tag turns every guard into dead code the compiler
// removes, matching a release-mode assert.
const boundsChecks = true
