package baremetal

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/nodes"
)

// NodesClient is a minimal interface for the Ironic nodes API
type NodesClient interface {
	Get(ctx context.Context, id string) (*nodes.Node, error)
	AttachVIF(ctx context.Context, nodeID, vifID, portID string) error
	DetachVIF(ctx context.Context, nodeID, vifID string) error
}

type nodesClient struct {
	c *gophercloud.ServiceClient
}

var _ NodesClient = &nodesClient{}

func (c *nodesClient) Get(ctx context.Context, id string) (*nodes.Node, error) {
	return nodes.Get(ctx, c.c, id).Extract()
}

// AttachVIF attaches the VIF to the node at the given physical port; an
// empty portID lets Ironic pick one.
func (c *nodesClient) AttachVIF(ctx context.Context, nodeID, vifID, portID string) error {
	return nodes.AttachVirtualInterface(ctx, c.c, nodeID, nodes.VirtualInterfaceOpts{
		ID:       vifID,
		PortUUID: portID,
	}).ExtractErr()
}

func (c *nodesClient) DetachVIF(ctx context.Context, nodeID, vifID string) error {
	return nodes.DetachVirtualInterface(ctx, c.c, nodeID, vifID).ExtractErr()
}

// NewNodesClient creates a new NodesClient.  The Ironic API accepts either a
// node name or a node UUID wherever an ident is expected.
func NewNodesClient(c *gophercloud.ServiceClient) NodesClient {
	return &nodesClient{c: c}
}
