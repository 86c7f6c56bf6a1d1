package main

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/openstack-esi/nodenet/pkg/env"
	"github.com/openstack-esi/nodenet/pkg/nodenet"
)

func reconcile(ctx context.Context, log *logrus.Entry, dryRun bool, node string, networks []string) error {
	clients, err := env.NewClients(ctx)
	if err != nil {
		return err
	}

	m := nodenet.NewManager(log, dryRun, clients.BaremetalNodes, clients.BaremetalPorts, clients.Networks, clients.NetworkPorts)

	changed, err := m.Reconcile(ctx, node, networks)
	if err != nil {
		return err
	}

	log.Printf("changed: %t", changed)

	return nil
}
