// Package depot provides the Depot aggregate root: the single owner of the
// vehicles, couriers and orders known to the application, and the text
// rendering of its state.
package depot
