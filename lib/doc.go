// Package lib provide statistical utilities shared by the
// llrb-index packages.
package lib
