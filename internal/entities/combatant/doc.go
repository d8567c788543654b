// Package combatant holds the arena representation of a fighter.
//
// A Combatant is owned by exactly one engine for the lifetime of a combat.
// Subsystems (fatigue, grapple, hit location, status, morale) receive a
// pointer into the arena and mutate it in place; hosts only ever hold the id
// and ask the engine for a snapshot.
package combatant
