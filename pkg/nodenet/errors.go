package nodenet

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import "fmt"

// NotFoundError is returned when a node reference does not resolve to a
// baremetal node.  It aborts a reconcile before any mutation.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.Ref)
}

// PortExhaustedError is returned when a network must be attached but the
// node has no physical port left without a VIF.  Attachments and detachments
// already performed in the same run are not rolled back; re-running the
// reconcile after freeing a port converges.
type PortExhaustedError struct {
	Node    string
	Network string
}

func (e *PortExhaustedError) Error() string {
	return fmt.Sprintf("node %q has no free ports for network %q", e.Node, e.Network)
}
