package emitter

// Sentinel is the in-band token emitted in place of any subtree that
// violates the emitter's structural preconditions. Callers may search
// the output for it to detect partial failure.
const Sentinel = "<<Error>>"
