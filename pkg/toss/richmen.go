package toss

import "github.com/luxfi/ssc/pkg/message"

// RichmenOracle is an external, read-only collaborator (spec §6: stake
// verification is a Non-goal of this module) that reports whether a
// stakeholder holds enough stake to participate in an epoch's MPC round.
// pkg/toss never implements this itself; it only consumes it.
type RichmenOracle interface {
	IsRichman(epoch message.EpochIndex, stakeholder []byte) bool
}

// StableCertificateWindow is an external, read-only collaborator that
// reports whether a VSS certificate was committed deeply enough to be
// treated as immutable under reorg (spec §4.7 getStableCertificates). This
// is a supplemented feature: the distilled spec leaves "stable" undefined,
// so the core depends on this interface rather than deciding it internally.
type StableCertificateWindow interface {
	IsStable(issuedAt, current message.EpochIndex) bool
}

// DepthStableWindow is a usable reference implementation of
// StableCertificateWindow: a certificate is stable once at least Depth
// epochs have elapsed since it was issued. It is provided so the in-memory
// simulation and tests are runnable, not as the core's prescribed policy.
type DepthStableWindow struct {
	Depth message.EpochIndex
}

// IsStable implements StableCertificateWindow.
func (w DepthStableWindow) IsStable(issuedAt, current message.EpochIndex) bool {
	return current >= issuedAt+w.Depth
}
