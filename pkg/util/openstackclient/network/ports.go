package network

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
)

// PortsClient is a minimal interface for the Neutron ports API
type PortsClient interface {
	Get(ctx context.Context, id string) (*ports.Port, error)
	ListByName(ctx context.Context, name string) ([]ports.Port, error)
	Create(ctx context.Context, name, networkID, deviceOwner string) (*ports.Port, error)
	Delete(ctx context.Context, id string) error
}

type portsClient struct {
	c *gophercloud.ServiceClient
}

var _ PortsClient = &portsClient{}

// Get returns the port with the given id, or nil if it does not exist.
func (c *portsClient) Get(ctx context.Context, id string) (*ports.Port, error) {
	port, err := ports.Get(ctx, c.c, id).Extract()
	if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return port, nil
}

func (c *portsClient) ListByName(ctx context.Context, name string) ([]ports.Port, error) {
	pages, err := ports.List(c.c, ports.ListOpts{Name: name}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	return ports.ExtractPorts(pages)
}

func (c *portsClient) Create(ctx context.Context, name, networkID, deviceOwner string) (*ports.Port, error) {
	return ports.Create(ctx, c.c, ports.CreateOpts{
		Name:        name,
		NetworkID:   networkID,
		DeviceOwner: deviceOwner,
	}).Extract()
}

func (c *portsClient) Delete(ctx context.Context, id string) error {
	return ports.Delete(ctx, c.c, id).ExtractErr()
}

// NewPortsClient creates a new PortsClient
func NewPortsClient(c *gophercloud.ServiceClient) PortsClient {
	return &portsClient{c: c}
}
