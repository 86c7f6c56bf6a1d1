package env

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"

	"github.com/openstack-esi/nodenet/pkg/util/openstackclient/baremetal"
	"github.com/openstack-esi/nodenet/pkg/util/openstackclient/network"
)

// baremetalMicroversion is the Ironic API microversion requested on every
// call; the VIF attach/detach API needs at least 1.28.
const baremetalMicroversion = "1.56"

// Clients holds authenticated clients for the two services the reconciler
// drives.
type Clients struct {
	BaremetalNodes baremetal.NodesClient
	BaremetalPorts baremetal.PortsClient
	Networks       network.NetworksClient
	NetworkPorts   network.PortsClient
}

// NewClients authenticates against the cloud named by the standard OS_*
// environment variables and returns Ironic and Neutron service clients.
func NewClients(ctx context.Context) (*Clients, error) {
	err := ValidateVars("OS_AUTH_URL")
	if err != nil {
		return nil, err
	}

	opts, err := openstack.AuthOptionsFromEnv()
	if err != nil {
		return nil, err
	}

	provider, err := openstack.AuthenticatedClient(ctx, opts)
	if err != nil {
		return nil, err
	}

	eo := gophercloud.EndpointOpts{Region: os.Getenv("OS_REGION_NAME")}

	bm, err := openstack.NewBareMetalV1(provider, eo)
	if err != nil {
		return nil, err
	}
	bm.Microversion = baremetalMicroversion

	net, err := openstack.NewNetworkV2(provider, eo)
	if err != nil {
		return nil, err
	}

	return &Clients{
		BaremetalNodes: baremetal.NewNodesClient(bm),
		BaremetalPorts: baremetal.NewPortsClient(bm),
		Networks:       network.NewNetworksClient(net),
		NetworkPorts:   network.NewPortsClient(net),
	}, nil
}
