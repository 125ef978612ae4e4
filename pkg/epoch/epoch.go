// Package epoch holds the explicit protocol configuration (spec §6 "Protocol
// constant", §9 Design Notes): the redesign of a single global k constant
// into an ordinary configuration value. pkg/phase and pkg/toss do not take
// these types: phase.NewSchedule receives k as a plain int, and
// toss.NewState takes no configuration.
package epoch

import "github.com/luxfi/ssc/pkg/message"

// Params is the protocol-wide configuration for a node: the security
// parameter controlling phase length.
type Params struct {
	K int
}

// Context pairs Params with the epoch currently in progress.
type Context struct {
	Params
	Epoch message.EpochIndex
}

// NewContext returns a Context for the given parameters and epoch.
func NewContext(params Params, epoch message.EpochIndex) Context {
	return Context{Params: params, Epoch: epoch}
}

// Next returns the Context for the following epoch, keeping Params fixed.
func (c Context) Next() Context {
	return Context{Params: c.Params, Epoch: c.Epoch + 1}
}
