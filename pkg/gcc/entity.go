package gcc

// Entity is an opaque handle the host engine assigns to an integer
// variable or a Boolean literal. The core never interprets an Entity's
// internal representation; it only passes entities back to the engine
// through Assignments and PropagationContext.
type Entity int

// NoEntity is the zero value, used where a lookup legitimately found
// nothing (e.g. an unposted equality pair).
const NoEntity Entity = -1
