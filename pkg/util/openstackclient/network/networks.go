package network

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
)

// NetworksClient is a minimal interface for the Neutron networks API
type NetworksClient interface {
	List(ctx context.Context) ([]networks.Network, error)
}

type networksClient struct {
	c *gophercloud.ServiceClient
}

var _ NetworksClient = &networksClient{}

func (c *networksClient) List(ctx context.Context) ([]networks.Network, error) {
	pages, err := networks.List(c.c, networks.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	return networks.ExtractNetworks(pages)
}

// NewNetworksClient creates a new NetworksClient
func NewNetworksClient(c *gophercloud.ServiceClient) NetworksClient {
	return &networksClient{c: c}
}
