package network

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../mocks/openstackclient/$GOPACKAGE
//go:generate mockgen -destination=../../mocks/openstackclient/$GOPACKAGE/$GOPACKAGE.go github.com/openstack-esi/nodenet/pkg/util/openstackclient/$GOPACKAGE NetworksClient,PortsClient
