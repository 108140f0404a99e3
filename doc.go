// Package marketplace implements a small command-line marketplace ledger.
//
// Users hold a balance, list items for sale and buy items from one another.
// The whole state is a single Store persisted as one JSON document: every
// operation loads the store, validates, mutates it in memory and saves it
// back as a whole. That load/mutate/save cycle is the unit of atomicity.
package marketplace
