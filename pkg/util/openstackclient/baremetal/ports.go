package baremetal

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/ports"
)

// PortsClient is a minimal interface for the Ironic ports API
type PortsClient interface {
	ListDetail(ctx context.Context, nodeID string) ([]ports.Port, error)
}

type portsClient struct {
	c *gophercloud.ServiceClient
}

var _ PortsClient = &portsClient{}

// ListDetail returns all the node's ports with internal_info populated, in
// API list order.
func (c *portsClient) ListDetail(ctx context.Context, nodeID string) ([]ports.Port, error) {
	pages, err := ports.ListDetail(c.c, ports.ListOpts{NodeUUID: nodeID}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	return ports.ExtractPorts(pages)
}

// NewPortsClient creates a new PortsClient
func NewPortsClient(c *gophercloud.ServiceClient) PortsClient {
	return &portsClient{c: c}
}
