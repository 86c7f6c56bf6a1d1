package main

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openstack-esi/nodenet/pkg/env"
	"github.com/openstack-esi/nodenet/pkg/nodenet"
)

func attached(ctx context.Context, log *logrus.Entry, node string) error {
	clients, err := env.NewClients(ctx)
	if err != nil {
		return err
	}

	m := nodenet.NewManager(log, false, clients.BaremetalNodes, clients.BaremetalPorts, clients.Networks, clients.NetworkPorts)

	nets, err := m.Attached(ctx, node)
	if err != nil {
		return err
	}

	for _, net := range nets {
		fmt.Printf("%s\t%s\n", net.ID, net.Name)
	}

	return nil
}
