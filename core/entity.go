package core

// Entity is an arena-allocated identifier, 0 is never issued
type Entity uint64

// NoEntity is the zero id, used as an explicit "none" in component fields
const NoEntity Entity = 0
