package nodenet

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	baremetalnodes "github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/nodes"
	baremetalports "github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	networkports "github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/sirupsen/logrus"

	"github.com/openstack-esi/nodenet/pkg/util/openstackclient/baremetal"
	"github.com/openstack-esi/nodenet/pkg/util/openstackclient/network"
)

// deviceOwner marks Neutron ports created by the reconciler.
const deviceOwner = "baremetal:none"

// vifPortIDKey is the internal_info key Ironic uses for the Neutron port
// attached to a physical port.
const vifPortIDKey = "tenant_vif_port_id"

// Manager reconciles the set of networks attached to a baremetal node.
type Manager interface {
	// Reconcile converges the networks attached to the node onto exactly
	// the given list of network names or IDs, detaching anything not in
	// the list and attaching anything missing.  It reports whether any
	// change was made.  References matching no known network are ignored;
	// a nil or empty list detaches everything.
	Reconcile(ctx context.Context, nodeRef string, networkRefs []string) (bool, error)

	// Attached returns the networks currently attached to the node, in
	// physical port order.
	Attached(ctx context.Context, nodeRef string) ([]networks.Network, error)
}

type manager struct {
	log    *logrus.Entry
	dryRun bool

	nodes    baremetal.NodesClient
	bmports  baremetal.PortsClient
	networks network.NetworksClient
	ports    network.PortsClient
}

// NewManager creates a new Manager
func NewManager(log *logrus.Entry, dryRun bool, nodes baremetal.NodesClient, bmports baremetal.PortsClient, networkscli network.NetworksClient, portscli network.PortsClient) Manager {
	return &manager{
		log:    log,
		dryRun: dryRun,

		nodes:    nodes,
		bmports:  bmports,
		networks: networkscli,
		ports:    portscli,
	}
}

// physicalPort is the slice of an Ironic port the reconciler needs: the
// port's UUID and the Neutron port currently attached as its VIF, empty when
// the port is free.
type physicalPort struct {
	id  string
	vif string
}

func (m *manager) Reconcile(ctx context.Context, nodeRef string, networkRefs []string) (bool, error) {
	node, err := m.findNode(ctx, nodeRef)
	if err != nil {
		return false, err
	}

	pports, err := m.listPhysicalPorts(ctx, node.UUID)
	if err != nil {
		return false, err
	}

	nets, err := m.networks.List(ctx)
	if err != nil {
		return false, err
	}

	desired := resolveNetworkRefs(nets, networkRefs)

	current, err := m.attachedNetworks(ctx, pports, nets)
	if err != nil {
		return false, err
	}

	toDetach := diffNetworks(current, desired)
	toAttach := diffNetworks(desired, current)

	changed := false

	for _, net := range toDetach {
		detached, err := m.detachNetwork(ctx, node, pports, net)
		if err != nil {
			return changed, err
		}
		changed = changed || detached
	}

	for _, net := range toAttach {
		attached, err := m.attachNetwork(ctx, node, net)
		if err != nil {
			return changed, err
		}
		changed = changed || attached
	}

	return changed, nil
}

func (m *manager) Attached(ctx context.Context, nodeRef string) ([]networks.Network, error) {
	node, err := m.findNode(ctx, nodeRef)
	if err != nil {
		return nil, err
	}

	pports, err := m.listPhysicalPorts(ctx, node.UUID)
	if err != nil {
		return nil, err
	}

	nets, err := m.networks.List(ctx)
	if err != nil {
		return nil, err
	}

	return m.attachedNetworks(ctx, pports, nets)
}

func (m *manager) findNode(ctx context.Context, ref string) (*baremetalnodes.Node, error) {
	node, err := m.nodes.Get(ctx, ref)
	if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
		return nil, &NotFoundError{Ref: ref}
	}
	if err != nil {
		return nil, err
	}

	return node, nil
}

func (m *manager) listPhysicalPorts(ctx context.Context, nodeID string) ([]physicalPort, error) {
	bmports, err := m.bmports.ListDetail(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	return newPhysicalPorts(bmports), nil
}

// newPhysicalPorts reduces each Ironic port to the pair the reconciler needs.
// A missing, empty or non-string tenant_vif_port_id all mean the port carries
// no VIF: the port counts as free.
func newPhysicalPorts(bmports []baremetalports.Port) []physicalPort {
	pports := make([]physicalPort, 0, len(bmports))
	for _, p := range bmports {
		vif, _ := p.InternalInfo[vifPortIDKey].(string)
		pports = append(pports, physicalPort{id: p.UUID, vif: vif})
	}

	return pports
}

// attachedNetworks derives the networks currently attached to the node by
// resolving each physical port's VIF to a Neutron port and that port to its
// network.  VIFs that no longer resolve to a port, and ports on unknown
// networks, are skipped.
func (m *manager) attachedNetworks(ctx context.Context, pports []physicalPort, nets []networks.Network) ([]networks.Network, error) {
	byID := make(map[string]networks.Network, len(nets))
	for _, net := range nets {
		byID[net.ID] = net
	}

	var attached []networks.Network
	for _, pp := range pports {
		if pp.vif == "" {
			continue
		}

		port, err := m.ports.Get(ctx, pp.vif)
		if err != nil {
			return nil, err
		}
		if port == nil {
			continue
		}

		if net, ok := byID[port.NetworkID]; ok {
			attached = append(attached, net)
		}
	}

	return attached, nil
}

// resolveNetworkRefs maps the given network names or IDs onto the known
// networks.  References matching nothing are dropped; a network referenced
// by both name and ID appears once.
func resolveNetworkRefs(nets []networks.Network, refs []string) []networks.Network {
	want := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		want[ref] = struct{}{}
	}

	var resolved []networks.Network
	for _, net := range nets {
		if _, ok := want[net.Name]; ok {
			resolved = append(resolved, net)
			continue
		}
		if _, ok := want[net.ID]; ok {
			resolved = append(resolved, net)
		}
	}

	return resolved
}

// diffNetworks returns the networks in a whose ID does not appear in b.
func diffNetworks(a, b []networks.Network) []networks.Network {
	ids := make(map[string]struct{}, len(b))
	for _, net := range b {
		ids[net.ID] = struct{}{}
	}

	var diff []networks.Network
	for _, net := range a {
		if _, ok := ids[net.ID]; !ok {
			diff = append(diff, net)
		}
	}

	return diff
}

func (m *manager) detachNetwork(ctx context.Context, node *baremetalnodes.Node, pports []physicalPort, net networks.Network) (bool, error) {
	port, err := m.findNetworkPort(ctx, node.Name, net.Name)
	if err != nil {
		return false, err
	}
	if port == nil {
		// already detached
		return false, nil
	}

	if findAttachedPort(pports, port.ID) == nil {
		// the Neutron port exists but no physical port carries it;
		// leave the inconsistency alone rather than guess
		m.log.Printf("network port %s has no matching physical port on node %s, skipping", port.Name, node.Name)
		return false, nil
	}

	if m.dryRun {
		m.log.Printf("[DRY-RUN=True] Detaching VIF %s from node %s and deleting network port %s", port.ID, node.Name, port.Name)
		return true, nil
	}

	m.log.Printf("Detaching VIF %s from node %s", port.ID, node.Name)
	err = m.nodes.DetachVIF(ctx, node.UUID, port.ID)
	if err != nil {
		return false, err
	}

	m.log.Printf("Deleting network port %s", port.Name)
	err = m.ports.Delete(ctx, port.ID)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (m *manager) attachNetwork(ctx context.Context, node *baremetalnodes.Node, net networks.Network) (bool, error) {
	if m.dryRun {
		m.log.Printf("[DRY-RUN=True] Attaching network %s to node %s", net.Name, node.Name)
		return true, nil
	}

	// detaches and earlier attaches move VIFs around, so refresh the port
	// list on every iteration
	pports, err := m.listPhysicalPorts(ctx, node.UUID)
	if err != nil {
		return false, err
	}

	port, err := m.findNetworkPort(ctx, node.Name, net.Name)
	if err != nil {
		return false, err
	}
	if port == nil {
		port, err = m.createNetworkPort(ctx, node.Name, net)
		if err != nil {
			return false, err
		}
	}

	if findAttachedPort(pports, port.ID) != nil {
		// already attached
		return false, nil
	}

	free := findFreePort(pports)
	if free == nil {
		return false, &PortExhaustedError{Node: node.Name, Network: net.Name}
	}

	m.log.Printf("Attaching VIF %s to node %s at port %s", port.ID, node.Name, free.id)
	err = m.nodes.AttachVIF(ctx, node.UUID, port.ID, free.id)
	if err != nil {
		return false, err
	}

	return true, nil
}

// findNetworkPort looks up the Neutron port named after the node/network
// pair, or nil if it does not exist.
func (m *manager) findNetworkPort(ctx context.Context, nodeName, networkName string) (*networkports.Port, error) {
	found, err := m.ports.ListByName(ctx, portName(nodeName, networkName))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}

	return &found[0], nil
}

func (m *manager) createNetworkPort(ctx context.Context, nodeName string, net networks.Network) (*networkports.Port, error) {
	name := portName(nodeName, net.Name)
	m.log.Printf("Creating network port %s", name)

	return m.ports.Create(ctx, name, net.ID, deviceOwner)
}

// portName is the deterministic name binding a Neutron port to a node and
// network pair.
func portName(nodeName, networkName string) string {
	return fmt.Sprintf("%s-%s", nodeName, networkName)
}

func findAttachedPort(pports []physicalPort, vifID string) *physicalPort {
	for i, pp := range pports {
		if pp.vif == vifID {
			return &pports[i]
		}
	}

	return nil
}

// findFreePort returns the first physical port without a VIF, in API list
// order.
func findFreePort(pports []physicalPort) *physicalPort {
	for i, pp := range pports {
		if pp.vif == "" {
			return &pports[i]
		}
	}

	return nil
}
