// Package control implements the control hierarchy: one Control interface
// satisfied by every widget, the parenting, enabling and destruction rules
// that hold uniformly across widgets, the container and leaf widgets, and
// Area, a canvas that forwards paint and input to an application handler.
//
// Every concrete widget embeds Base, which carries the parent link and
// the intrinsic visible and enabled flags. The algorithms that work on any
// Control (SetParent, Destroy, Verify, EnabledToUser) are written once,
// against the interface.
//
// # Ownership
//
// Containers own their children. A control has at most one parent; adding
// a control that already has a parent to a container is a contract
// violation, while SetParent moves it, detaching it from its old parent
// first. Destroying a container destroys its children. A control must be
// detached before it is destroyed on its own.
//
// # Events
//
// Each event holds at most one handler: registering a handler replaces
// the previous one and registering nil clears it. Handlers run on the UI
// thread. Methods that simulate user input (Click, Toggle, Edit,
// RequestClose and the Area Dispatch methods) are the entry points a host
// backend uses to deliver input; they do nothing while the control is not
// EnabledToUser.
package control
